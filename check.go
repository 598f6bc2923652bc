package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kastheco/folio/config"
	"github.com/kastheco/folio/internal/check"
	"github.com/kastheco/folio/log"
	"github.com/spf13/cobra"
)

// errUnhealthy is returned when health < 100% to signal exit code 1 without printing a message.
var errUnhealthy = errors.New("unhealthy")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Audit the config, content, preferences and CV source",
		Long: `Checks everything folio reads at startup and reports each item:

  1. Config       (~/.config/folio/config.toml)
  2. Content      (content_path, or the built-in sample)
  3. Preferences  (prefs.db)
  4. CV source    (cv.url or cv.path)

Exit code 0 if 100% healthy, exit code 1 otherwise.`,
		RunE: runCheck,
		// Health failures are not usage errors.
		SilenceUsage: true,
		// Suppress cobra's "Error: ..." line for the unhealthy sentinel.
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("verbose", "v", false, "show detail for healthy items too")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	log.Initialize(false)
	defer log.Close()

	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("get config dir: %w", err)
	}
	configPath := filepath.Join(configDir, config.ConfigFileName)

	cfg, err := config.LoadConfigFrom(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	result := check.Audit(cmd.Context(), cfg, configPath)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nfolio %s:\n", version)
	for _, e := range result.Entries {
		fmt.Fprintf(out, "  %s %-12s %s", statusGlyph(e.Status), e.Name, e.Status)
		if e.Detail != "" && (verbose || e.Status != check.StatusOK) {
			fmt.Fprintf(out, "  %s", e.Detail)
		}
		fmt.Fprintln(out)
	}

	ok, total := result.Summary()
	pct := 0
	if total > 0 {
		pct = ok * 100 / total
	}

	fmt.Fprintf(out, "\nHealth: %d/%d OK (%d%%)\n", ok, total, pct)

	if pct < 100 {
		return errUnhealthy
	}
	return nil
}

func statusGlyph(s check.Status) string {
	switch s {
	case check.StatusOK:
		return "✓"
	case check.StatusSkipped:
		return "⊘"
	case check.StatusMissing:
		return "✗"
	case check.StatusBroken:
		return "✗"
	default:
		return "?"
	}
}

func init() {
	rootCmd.AddCommand(newCheckCmd())
}
