package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateForce bool

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write the example configuration file.",
	Long: `Write the example configuration used by "config edit" to the config path.

An existing file is kept and only validated unless --force is given, which
replaces it with the template. Either way the end time of the resulting
defaults is printed.`,
	Example: `
  # Create $HOME/.workend.yaml
  workend config create

  # Reset a custom config file to the template
  workend --configFile ./team.yaml config create --force
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}
		return createConfig(cmd.OutOrStdout(), configPath, configCreateForce)
	},
}

func createConfig(out io.Writer, configPath string, force bool) error {
	switch {
	case force:
		if err := writeConfigTemplate(configPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Config file reset to template: %s\n", configPath)
	default:
		created, err := ensureConfigFileWithTemplate(configPath)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "New config file created at: %s\n", configPath)
		} else {
			fmt.Fprintf(out, "Config file already exists at: %s\n", configPath)
		}
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}
	printDefaultsEnd(out, *cfg)
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)

	configCreateCmd.Flags().BoolVar(&configCreateForce, "force", false, "Replace an existing config file with the template")
}
