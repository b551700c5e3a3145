package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"workend/config"
	"workend/workday"
)

const defaultConfigName = ".workend.yaml"

var errNoConfigFile = errors.New("no configuration file found")

// resolveConfigPath picks the file that config create/edit write to: the
// --configFile flag, then the file viper loaded, then $HOME/.workend.yaml.
func resolveConfigPath(configFileFlag, configFileUsed string) (string, error) {
	if path, err := activeConfigPath(configFileFlag, configFileUsed); err == nil {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigName), nil
}

// activeConfigPath is resolveConfigPath without the home fallback.
func activeConfigPath(configFileFlag, configFileUsed string) (string, error) {
	if strings.TrimSpace(configFileFlag) != "" {
		return configFileFlag, nil
	}
	if strings.TrimSpace(configFileUsed) != "" {
		return configFileUsed, nil
	}
	return "", errNoConfigFile
}

func ensureConfigFileWithTemplate(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking config file failed: %w", err)
	}
	if err := writeConfigTemplate(path); err != nil {
		return false, err
	}
	return true, nil
}

func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory failed: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return fmt.Errorf("creating example config failed: %w", err)
	}
	return nil
}

// loadConfigFile validates the file at path on its own, without the
// environment overrides viper applies to the active config.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config failed: %w", err)
	}
	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		return nil, fmt.Errorf("config validation failed in %s: %w", path, err)
	}
	return cfg, nil
}

func printDefaultsEnd(out io.Writer, cfg config.Config) {
	inputs := cfg.Inputs()
	fmt.Fprintf(out, "Defaults: start %s, break %s min, overtime %s h -> ends at %s\n",
		inputs.StartTime, formatFloat(inputs.BreakMinutes), formatFloat(inputs.OvertimeHours),
		workday.Describe(inputs.EndTime()))
}
