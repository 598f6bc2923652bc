package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/kastheco/folio/prefs"
	"github.com/kastheco/folio/ui"
	"github.com/kastheco/folio/ui/overlay"
)

// executePrefsShow formats both preferences.
func executePrefsShow(p *prefs.Preferences) string {
	return fmt.Sprintf("%s = %s\n%s = %t\n", prefs.KeyTheme, p.Theme(), prefs.KeyScrollSnap, p.ScrollSnapEnabled())
}

// executePrefsSet stores value under key. Only the two known keys are
// accepted.
func executePrefsSet(p *prefs.Preferences, key, value string) error {
	switch key {
	case prefs.KeyTheme:
		return p.SetTheme(value)
	case prefs.KeyScrollSnap, "scroll-snap", "snap":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false, got %q", prefs.KeyScrollSnap, value)
		}
		return p.SetScrollSnapEnabled(on)
	}
	return fmt.Errorf("unknown preference %q (want %s or %s)", key, prefs.KeyTheme, prefs.KeyScrollSnap)
}

// newPrefsForm builds the interactive editor. Values land in theme and snap
// when the form completes.
func newPrefsForm(theme *string, snap *bool) *huh.Form {
	mode, _ := ui.ParseMode(*theme)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("dark", prefs.ThemeDark),
					huh.NewOption("light", prefs.ThemeLight),
				).
				Value(theme),
			huh.NewConfirm().
				Title("Scroll snap").
				Description("settle on the nearest section after scrolling").
				Affirmative("on").
				Negative("off").
				Value(snap),
		),
	).WithTheme(overlay.HuhTheme(ui.ThemeFor(mode)))
}

// NewPrefsCmd returns the `folio prefs` command group.
func NewPrefsCmd() *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "show or change the stored preferences",
	}

	// folio prefs show
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, done := loadConfig()
			defer done()
			p, store := OpenPrefs(cfg)
			defer store.Close()
			fmt.Fprint(cmd.OutOrStdout(), executePrefsShow(p))
			return nil
		},
	}
	prefsCmd.AddCommand(showCmd)

	// folio prefs set
	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "store one preference (theme dark|light, scrollSnapEnabled true|false)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, done := loadConfig()
			defer done()
			p, store := OpenPrefs(cfg)
			defer store.Close()
			if err := executePrefsSet(p, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), executePrefsShow(p))
			return nil
		},
	}
	prefsCmd.AddCommand(setCmd)

	// folio prefs edit
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "edit the preferences interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, done := loadConfig()
			defer done()
			p, store := OpenPrefs(cfg)
			defer store.Close()

			theme, snap := p.Theme(), p.ScrollSnapEnabled()
			if err := newPrefsForm(&theme, &snap).Run(); err != nil {
				return err
			}
			if err := p.SetTheme(theme); err != nil {
				return err
			}
			if err := p.SetScrollSnapEnabled(snap); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), executePrefsShow(p))
			return nil
		},
	}
	prefsCmd.AddCommand(editCmd)

	return prefsCmd
}
