package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/projectboard/internal/paths"
)

func newInitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with the default\nfield rules. An existing config.yaml is left unchanged.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(e.configDir, 0o755); err != nil {
				return sysError(fmt.Errorf("create config directory: %w", err))
			}

			path := paths.ConfigFile(e.configDir)
			created, err := writeConfigIfMissing(path)
			if err != nil {
				return sysError(fmt.Errorf("write config: %w", err))
			}

			if created {
				e.logger.Info().Str("path", path).Msg("config written")
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
			}
			return nil
		},
	}
}
