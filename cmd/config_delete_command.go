package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"workend/config"
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the config file named by --configFile or loaded from the default
locations. Afterwards the built-in defaults (or WORKEND_* environment values)
apply again.`,
	Example: `
  # Delete active config
  workend config delete

  # Delete a custom config file
  workend --configFile ./team.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := activeConfigPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}
		return deleteConfig(cmd.OutOrStdout(), configPath)
	},
}

func deleteConfig(out io.Writer, configPath string) error {
	if err := os.Remove(configPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w at %s", errNoConfigFile, configPath)
		}
		return fmt.Errorf("deleting config file failed: %w", err)
	}

	fmt.Fprintf(out, "Config file deleted: %s\n", configPath)
	printDefaultsEnd(out, config.Default())
	return nil
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
