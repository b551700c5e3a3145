package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"workend/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values. Without a
config file the built-in defaults are shown.`,
	Example: `
  # Show active configuration
  workend config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		out := cmd.OutOrStdout()
		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Fprintln(out, "Config file loaded from:", configPath)
		} else {
			fmt.Fprintln(out, "No config file loaded, using defaults.")
		}
		printConfig(out, *cfg)
		return nil
	},
}

func printConfig(out io.Writer, cfg config.Config) {
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "%s: %s\n", config.KeyDefaultsStartTime, cfg.Defaults.StartTime)
	fmt.Fprintf(out, "%s: %s\n", config.KeyDefaultsBreakMinutes, formatFloat(cfg.Defaults.BreakMinutes))
	fmt.Fprintf(out, "%s: %s\n", config.KeyDefaultsOvertimeHours, formatFloat(cfg.Defaults.OvertimeHours))
	fmt.Fprintf(out, "%s: %s\n", config.KeyPresetsBreakMinutes, formatFloatList(cfg.Presets.BreakMinutes))
	fmt.Fprintf(out, "%s: %s\n", config.KeyPresetsOvertimeHours, formatFloatList(cfg.Presets.OvertimeHours))
	fmt.Fprintf(out, "%s: %d\n", config.KeyServePort, cfg.Serve.Port)
	fmt.Fprintf(out, "%s: %t\n", config.KeyServeOpenBrowser, cfg.Serve.OpenBrowser)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatFloatList(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, formatFloat(value))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
