package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gamecat/internal/prefs"
	"github.com/oakwood-commons/gamecat/pkg/logger"
)

func newPrefsCmd(o *rootOptions) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the remembered theme and view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, o, func(store *prefs.Store, where string) error {
				return printPrefs(cmd.OutOrStdout(), store.Load(), where, format)
			})
		},
	}
	showCmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text|json")

	var theme, view string
	setCmd := &cobra.Command{
		Use:     "set",
		Short:   "Change the stored theme or view",
		Example: "  gamecat prefs set --theme light\n  gamecat prefs set --view compact",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			th, vm, err := parseOverrides(theme, view)
			if err != nil {
				return err
			}
			if th == "" && vm == "" {
				return fmt.Errorf("nothing to set: pass --theme or --view")
			}
			return withStore(cmd, o, func(store *prefs.Store, where string) error {
				p := store.Load()
				if th != "" {
					p.ThemeName = th
				}
				if vm != "" {
					p.ViewMode = vm
				}
				if err := store.Save(p); err != nil {
					return err
				}
				return printPrefs(cmd.OutOrStdout(), p, where, "text")
			})
		},
	}
	setCmd.Flags().StringVar(&theme, "theme", "", "theme to remember: coffee|light")
	setCmd.Flags().StringVar(&view, "view", "", "view to remember: detailed|compact")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default theme and view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, o, func(store *prefs.Store, where string) error {
				p := prefs.Defaults()
				if err := store.Save(p); err != nil {
					return err
				}
				return printPrefs(cmd.OutOrStdout(), p, where, "text")
			})
		},
	}

	prefsCmd.AddCommand(showCmd, setCmd, resetCmd)
	return prefsCmd
}

// withStore opens the configured preference store for the duration of fn.
func withStore(cmd *cobra.Command, o *rootOptions, fn func(store *prefs.Store, where string) error) error {
	lgr := *logger.FromContext(cmd.Context())
	rc, err := loadRunConfig(o)
	if err != nil {
		return err
	}
	store, where, closeStore, err := rc.openStore(lgr)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store, where)
}

func printPrefs(w io.Writer, p prefs.UserPreferences, where, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "text", "":
		_, err := fmt.Fprintf(w, "theme: %s\nview:  %s\nstore: %s\n", p.ThemeName, p.ViewMode, where)
		return err
	default:
		return fmt.Errorf("invalid --output %q (expected text or json)", format)
	}
}
