package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kastheco/folio/config"
	"github.com/kastheco/folio/cv"
)

func newProgressBar(total int64, out io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("downloading cv"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}

// executeCVDownload saves the CV into dir (the configured download dir when
// empty). Remote downloads draw a progress bar on progress.
func executeCVDownload(ctx context.Context, cfg config.CVConfig, dir string, progress io.Writer) (string, error) {
	fetcher, err := cv.NewFetcher(cfg)
	if err != nil {
		return "", err
	}
	if hf, ok := fetcher.(*cv.HTTPFetcher); ok && progress != nil {
		hf.Progress = func(total int64) io.Writer { return newProgressBar(total, progress) }
	}
	if dir == "" {
		dir = cfg.DownloadDir
	}
	return cv.Download(ctx, fetcher, dir, cfg.FileName)
}

// executeCVInfo fetches the CV and describes it.
func executeCVInfo(ctx context.Context, cfg config.CVConfig) (string, error) {
	fetcher, err := cv.NewFetcher(cfg)
	if err != nil {
		return "", err
	}
	data, err := fetcher.Fetch(ctx)
	if err != nil {
		return "", err
	}
	info, err := cv.Inspect(data)
	if err != nil {
		return "", err
	}
	source := cfg.URL
	if source == "" {
		source = cfg.Path
	}
	return fmt.Sprintf("source: %s\npages:  %d\nsize:   %d bytes\n", source, info.Pages, info.Bytes), nil
}

// NewCVCmd returns the `folio cv` command group.
func NewCVCmd() *cobra.Command {
	cvCmd := &cobra.Command{
		Use:   "cv",
		Short: "download or inspect the CV",
	}

	// folio cv download
	var dirFlag string
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "save the CV to the download directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, done := loadConfig()
			defer done()
			var progress io.Writer
			if term.IsTerminal(int(os.Stderr.Fd())) {
				progress = cmd.ErrOrStderr()
			}
			path, err := executeCVDownload(cmd.Context(), cfg.CV, dirFlag, progress)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
			return nil
		},
	}
	downloadCmd.Flags().StringVarP(&dirFlag, "dir", "o", "", "directory to save into (default: configured download_dir)")
	cvCmd.AddCommand(downloadCmd)

	// folio cv info
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "fetch the CV and print its page count and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, done := loadConfig()
			defer done()
			out, err := executeCVInfo(cmd.Context(), cfg.CV)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cvCmd.AddCommand(infoCmd)

	return cvCmd
}
