// Package config defines the data structures related to configuration and
// includes functions for loading and checking the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iwvelando/equity-payoff/pkg/constants"
	"github.com/iwvelando/equity-payoff/pkg/payoff"
	"github.com/iwvelando/equity-payoff/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variable overrides, e.g.
// EQUITY_PAYOFF_LOAN_VEHICLEVALUE.
const EnvPrefix = "EQUITY_PAYOFF"

// Configuration holds all configuration for equity-payoff.
type Configuration struct {
	Loan      payoff.LoanInputs `yaml:"loan" mapstructure:"loan"`
	Timelines []int             `yaml:"timelines,omitempty" mapstructure:"timelines"`
	Schedule  ScheduleConfig    `yaml:"schedule,omitempty" mapstructure:"schedule"`
	Logging   LoggingConfig     `yaml:"logging,omitempty" mapstructure:"logging"`
	Output    OutputConfig      `yaml:"output,omitempty" mapstructure:"output"`
}

// ScheduleConfig bounds amortization schedule generation.
type ScheduleConfig struct {
	MaxMonths int `yaml:"maxMonths,omitempty" mapstructure:"maxMonths"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, xlsx
	File   string `yaml:"file,omitempty" mapstructure:"file"`     // destination, stdout when empty
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("timelines", constants.DefaultTimelines)
	v.SetDefault("schedule.maxMonths", constants.DefaultScheduleMaxMonths)
	v.SetDefault("output.format", constants.OutputFormatPretty)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Validate returns an error when the configuration cannot drive a calculation.
// Loan values are not checked here; see validation.ValidateInputs.
func (c *Configuration) Validate() error {
	var errs []error

	if len(c.Timelines) == 0 {
		errs = append(errs, errors.New("at least one timeline is required"))
	}
	for _, timeline := range c.Timelines {
		if timeline <= 0 {
			errs = append(errs, fmt.Errorf("timeline must be a positive number of months, got %d", timeline))
		}
	}
	if c.Schedule.MaxMonths <= 0 {
		errs = append(errs, fmt.Errorf("schedule.maxMonths must be positive, got %d", c.Schedule.MaxMonths))
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if !sort.IntsAreSorted(c.Timelines) {
		warnings = append(warnings, fmt.Sprintf("timelines %v are not in ascending order", c.Timelines))
	}

	seen := make(map[int]bool, len(c.Timelines))
	for _, timeline := range c.Timelines {
		if seen[timeline] {
			warnings = append(warnings, fmt.Sprintf("timeline %d is listed more than once", timeline))
		}
		seen[timeline] = true
	}

	if c.Loan.NegativeEquity() == 0 {
		warnings = append(warnings, fmt.Sprintf("loan balance %.2f does not exceed vehicle value %.2f; no extra payment is needed",
			c.Loan.RemainingBalance, c.Loan.VehicleValue))
	}

	if c.Output.Format == constants.OutputFormatXLSX && c.Output.File == "" {
		warnings = append(warnings, "xlsx output without output.file will write binary data to stdout")
	}

	return warnings
}
