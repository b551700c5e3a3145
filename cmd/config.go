package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage workend configuration file values.",
	Long: `Create, edit, display, and delete the workend configuration file.

The configuration stores the form defaults and presets:
- defaults.start_time / defaults.break_minutes / defaults.overtime_hours
- presets.break_minutes / presets.overtime_hours
- serve.port / serve.open_browser

Every key can also be set from the environment, e.g. WORKEND_DEFAULTS_START_TIME=07:30.`,
	Example: `
  # Create default config in $HOME/.workend.yaml
  workend config create

  # Show active config and source file
  workend config show

  # Open active config in editor (creates example if missing)
  workend config edit

  # Delete active config file
  workend config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
