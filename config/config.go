package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"workend/internal/timeutil"
	"workend/workday"
)

const (
	KeyDefaultsStartTime     = "defaults.start_time"
	KeyDefaultsBreakMinutes  = "defaults.break_minutes"
	KeyDefaultsOvertimeHours = "defaults.overtime_hours"
	KeyPresetsBreakMinutes   = "presets.break_minutes"
	KeyPresetsOvertimeHours  = "presets.overtime_hours"
	KeyServePort             = "serve.port"
	KeyServeOpenBrowser      = "serve.open_browser"

	EnvPrefix = "WORKEND"
)

type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Presets  PresetsConfig  `mapstructure:"presets"`
	Serve    ServeConfig    `mapstructure:"serve"`
}

type DefaultsConfig struct {
	StartTime     string  `mapstructure:"start_time" validate:"required,clock"`
	BreakMinutes  float64 `mapstructure:"break_minutes" validate:"gte=0"`
	OvertimeHours float64 `mapstructure:"overtime_hours" validate:"gte=0"`
}

type PresetsConfig struct {
	BreakMinutes  []float64 `mapstructure:"break_minutes" validate:"dive,gte=0"`
	OvertimeHours []float64 `mapstructure:"overtime_hours" validate:"dive,gte=0"`
}

type ServeConfig struct {
	Port        int  `mapstructure:"port" validate:"min=1,max=65535"`
	OpenBrowser bool `mapstructure:"open_browser"`
}

// Inputs returns the configured form defaults.
func (c Config) Inputs() workday.Inputs {
	return workday.Inputs{
		StartTime:     c.Defaults.StartTime,
		BreakMinutes:  c.Defaults.BreakMinutes,
		OvertimeHours: c.Defaults.OvertimeHours,
	}
}

// Default returns the configuration used when no file is present.
func Default() Config {
	inputs := workday.DefaultInputs()
	return Config{
		Defaults: DefaultsConfig{
			StartTime:     inputs.StartTime,
			BreakMinutes:  inputs.BreakMinutes,
			OvertimeHours: inputs.OvertimeHours,
		},
		Presets: PresetsConfig{
			BreakMinutes:  append([]float64(nil), workday.BreakPresets...),
			OvertimeHours: append([]float64(nil), workday.OvertimePresets...),
		},
		Serve: ServeConfig{
			Port:        8080,
			OpenBrowser: true,
		},
	}
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# workend configuration
defaults:
  start_time: "08:00"
  break_minutes: 30
  overtime_hours: 0

presets:
  break_minutes: [0, 15, 30, 45, 60]
  overtime_hours: [0, 1, 2]

serve:
  port: 8080
  open_browser: true
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Defaults.StartTime = strings.TrimSpace(cfg.Defaults.StartTime)

	if err := newValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateStartTime(cfg.Defaults.StartTime); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return timeutil.IsClock(fl.Field().String())
	})
	return validate
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault(KeyDefaultsStartTime, def.Defaults.StartTime)
	v.SetDefault(KeyDefaultsBreakMinutes, def.Defaults.BreakMinutes)
	v.SetDefault(KeyDefaultsOvertimeHours, def.Defaults.OvertimeHours)
	v.SetDefault(KeyPresetsBreakMinutes, def.Presets.BreakMinutes)
	v.SetDefault(KeyPresetsOvertimeHours, def.Presets.OvertimeHours)
	v.SetDefault(KeyServePort, def.Serve.Port)
	v.SetDefault(KeyServeOpenBrowser, def.Serve.OpenBrowser)
}

// The clock tag only checks the shape; a default start must also be a real
// time of day.
func validateStartTime(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("validation failed: defaults.start_time %q is not a valid time of day", value)
	}
	return nil
}
