package cmd

import (
	"github.com/spf13/cobra"

	"workend/tui"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive terminal form",
	Long: `Open a terminal form with start, break, and overtime fields.

The end time is recalculated on every keystroke. Presets and defaults come
from the configuration file.

Keys:
  tab / shift+tab   move between fields
  ctrl+n            set start to now
  ctrl+b / ctrl+o   cycle break / overtime presets
  ctrl+r            reset to defaults
  ctrl+y            copy end time to the clipboard
  esc / ctrl+c      quit`,
	Example: `
  # Open the form
  workend form
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return tui.Run(*cfg)
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}
