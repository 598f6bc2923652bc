package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kastheco/folio/app"
	cmd2 "github.com/kastheco/folio/cmd"
	"github.com/kastheco/folio/config"
	sentrypkg "github.com/kastheco/folio/internal/sentry"
	"github.com/kastheco/folio/log"
	"github.com/kastheco/folio/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version     = "0.1.0"
	contentFlag string
	sectionFlag string
	themeFlag   string
	rootCmd     = &cobra.Command{
		Use:   "folio [folio://#section]",
		Short: "folio - a personal portfolio that lives in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNoTerminal
			}

			cfg := config.LoadConfig()
			if err := sentrypkg.Init(version, cfg.SentryDSN, cfg.IsTelemetryEnabled()); err != nil {
				// Non-fatal: sentry failure should not prevent startup
				_ = err
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize(cfg.IsTelemetryEnabled())
			defer log.Close()

			var mode ui.Mode
			if themeFlag != "" {
				m, ok := ui.ParseMode(themeFlag)
				if !ok {
					return fmt.Errorf("--theme must be dark or light, got %q", themeFlag)
				}
				mode = m
			}

			fragment := sectionFlag
			if len(args) == 1 {
				fragment = parseFragment(args[0])
			}

			data, contentSource := cmd2.LoadContentOrDefault(cfg, contentFlag)

			p, store := cmd2.OpenPrefs(cfg)
			defer store.Close()

			sentrypkg.SetContext(p.Theme(), p.ScrollSnapEnabled(), contentSource)

			return app.Run(ctx, app.Options{
				Config:   cfg,
				Content:  data,
				Prefs:    p,
				Fragment: fragment,
				Theme:    mode,
				Version:  version,
			})
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			prefsPath, err := cfg.PrefsPath()
			if err != nil {
				return fmt.Errorf("failed to get preferences path: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Preferences: %s\n", prefsPath)
			fmt.Printf("Log: %s\n", log.LogFile())

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of folio",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("folio version %s\n", version)
			fmt.Printf("https://github.com/kastheco/folio/releases/tag/v%s\n", version)
		},
	}
)

var errNoTerminal = errors.New("folio needs an interactive terminal; try `folio content export` for plain output")

// parseFragment extracts the section id from "folio://#id", "#id" or "id".
func parseFragment(arg string) string {
	if i := strings.IndexByte(arg, '#'); i >= 0 {
		return arg[i+1:]
	}
	return strings.TrimPrefix(arg, "folio://")
}

func init() {
	rootCmd.Flags().StringVarP(&contentFlag, "content", "c", "",
		"Content document to show (TOML or YAML; default: content_path or the built-in sample)")
	rootCmd.Flags().StringVarP(&sectionFlag, "section", "s", "",
		"Section to open at, as if following a #section link")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "",
		"Colour theme for this session only (dark or light)")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cmd2.NewServeCmd(version))
	rootCmd.AddCommand(cmd2.NewCVCmd())
	rootCmd.AddCommand(cmd2.NewPrefsCmd())
	rootCmd.AddCommand(cmd2.NewContentCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUnhealthy) {
			os.Exit(1)
		}
		fmt.Println(err)
	}
}
