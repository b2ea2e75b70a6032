package cmd

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gamecat/internal/prefs"
	"github.com/oakwood-commons/gamecat/internal/ui"
	"github.com/oakwood-commons/gamecat/pkg/logger"
	"github.com/oakwood-commons/gamecat/pkg/settings"
)

func newThemesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runThemesList(cmd, o)
		},
	}
}

// runThemesList prints the selectable themes and marks the stored one.
func runThemesList(cmd *cobra.Command, o *rootOptions) error {
	lgr := *logger.FromContext(cmd.Context())
	noColor := o.noColor || !stdoutIsTerminal()
	if run, ok := settings.FromContext(cmd.Context()); ok {
		noColor = noColor || run.NoColor
	}

	rc, err := loadRunConfig(o)
	if err != nil {
		return err
	}
	themes, ignored := ui.NewThemeSet(rc.cfg.Themes)

	current := prefs.DefaultTheme
	if store, _, closeStore, err := rc.openStore(lgr); err == nil {
		current = store.Load().ThemeName
		closeStore()
	} else {
		lgr.V(1).Info("preference store unavailable", "error", err.Error())
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Available themes (default: %s):\n", prefs.DefaultTheme) //nolint:errcheck
	for _, name := range prefs.Themes {
		line := " - " + string(name)
		if !noColor {
			th := themes.Get(name)
			line += " " + lipgloss.NewStyle().Background(th.Background).Foreground(th.Accent).Render(" Aa ")
		}
		if name == current {
			line += " (current)"
		}
		fmt.Fprintln(w, line) //nolint:errcheck
	}
	if len(ignored) > 0 {
		sort.Strings(ignored)
		fmt.Fprintf(w, "Ignored config themes (only coffee and light can be selected): %s\n", strings.Join(ignored, ", ")) //nolint:errcheck
	}
	return nil
}
