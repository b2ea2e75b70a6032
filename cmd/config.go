package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gamecat/internal/config"
)

func newConfigCmd(o *rootOptions) *cobra.Command {
	var format string
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the merged configuration",
		Long: "Print the embedded defaults merged with the user config file and any\n" +
			"--prefs-* flags. The output is a valid config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := loadRunConfig(o)
			if err != nil {
				return err
			}
			out, err := config.Render(rc.cfg, format)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			origin := "embedded defaults"
			if rc.path != "" {
				origin = rc.path + " over embedded defaults"
			}
			fmt.Fprintf(w, "# gamecat configuration (%s)\n", origin) //nolint:errcheck
			_, err = w.Write(out)
			return err
		},
	}
	configCmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml|toml")
	return configCmd
}
