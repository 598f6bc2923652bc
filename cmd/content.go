package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kastheco/folio/content"
	"github.com/kastheco/folio/section"
)

// executeContentValidate parses the document and returns a one-line summary
// per section that the page would show.
func executeContentValidate(data *content.Data) (string, error) {
	if err := checkContent(data); err != nil {
		return "", err
	}
	var sb strings.Builder
	reg := section.Build(data)
	for i, d := range reg.All() {
		fmt.Fprintf(&sb, "%d  %-12s %s\n", i+1, d.ID, sectionDetail(data, d.ID))
	}
	return sb.String(), nil
}

func sectionDetail(data *content.Data, id string) string {
	switch id {
	case section.Home:
		return data.Homepage.Title
	case section.Projects:
		return fmt.Sprintf("%d projects", len(data.Projects))
	case section.Experience:
		return fmt.Sprintf("%d roles", len(data.Experience))
	case section.Hobbies:
		return fmt.Sprintf("%d galleries, %d games", len(data.Photography), len(data.Games))
	case section.Contact:
		return data.Contact.Email
	}
	return ""
}

// executeContentExport writes data to w as json, yaml or toml.
func executeContentExport(data *content.Data, format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(data)
	}
	return fmt.Errorf("unknown format %q (want json, yaml or toml)", format)
}

// NewContentCmd returns the `folio content` command group.
func NewContentCmd() *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "inspect the content document",
	}

	// folio content validate
	validateCmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "parse a content document and list the sections it produces",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, done := loadConfig()
			defer done()
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			data, err := LoadContent(cfg, path)
			if err != nil {
				return err
			}
			out, err := executeContentValidate(data)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	contentCmd.AddCommand(validateCmd)

	// folio content export
	var formatFlag string
	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: "print the content document as json, yaml or toml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, done := loadConfig()
			defer done()
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			data, err := LoadContent(cfg, path)
			if err != nil {
				return err
			}
			return executeContentExport(data, formatFlag, cmd.OutOrStdout())
		},
	}
	exportCmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "output format (json, yaml, toml)")
	contentCmd.AddCommand(exportCmd)

	return contentCmd
}
