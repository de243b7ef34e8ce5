package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/minigrep/internal/config"
)

// newInitCmd: minigrep init
func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new settings file",
		Long: `Writes a settings file with the default output options.
The file is used by later runs only when passed with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if path == "" {
				path = config.DefaultSettingsFile
			}
			if err := config.Write(path, config.Default()); err != nil {
				a.logger.Error("Error initializing settings file", zap.String("path", path), zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings file created/updated: %s\n", path)
			return nil
		},
	}
}
