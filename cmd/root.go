/*
Copyright © 2026 the workend authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"workend/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "workend",
	Short: "Calculate when your workday ends from start time, break, and overtime.",
	Long: `
**********************************************
*              WORKEND                       *
**********************************************

Computes the expected end of an 8:00 h workday from a start time (HH:MM),
a break in minutes, and overtime in hours. Results past midnight are shown
with a "+N day" marker.

Front ends:
- calc:   one-shot calculation on the command line
- form:   interactive terminal form that recalculates on every keystroke
- serve:  local web form that recalculates on every input change
- export: table of end times for a range of start times (CSV or Excel)
`,
	Example: `
  # End time for the configured defaults
  workend calc

  # Late start with a long break and two hours of overtime
  workend calc --start 20:00 --break 60 --overtime 2

  # Start now and copy the end time to the clipboard
  workend calc --now --copy

  # Interactive terminal form
  workend form

  # Local web form
  workend serve --port 8484

  # End times for every quarter hour between 07:00 and 10:00
  workend export --from 07:00 --to 10:00 --step 15 --output ./endtimes.xlsx

  # Create configuration file
  workend config create
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.workend.yaml, then ./.workend.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".workend" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".workend")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Defaults apply without a config file; only an explicit or broken file is reported.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Config file not loaded:", err)
		}
	}
}

// loadConfig validates the active configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
