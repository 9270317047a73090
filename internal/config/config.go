// Package config defines the data structures related to configuration and
// includes functions for loading, sanitizing and checking a commute file.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/commute-calculator/internal/commute"
	"github.com/iwvelando/commute-calculator/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for commute-calculator.
type Configuration struct {
	Inputs  commute.Inputs `yaml:"inputs" mapstructure:"inputs"`
	Logging LoggingConfig  `yaml:"logging,omitempty" mapstructure:"logging"`
	Output  OutputConfig   `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Inputs missing from the file keep their defaults and
// any input can be overridden from the environment, e.g.
// COMMUTE_INPUTS_GASPRICE=3.45.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
// An empty document yields the defaults.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// DefaultConfiguration returns the configuration used when no file is given.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Inputs: commute.DefaultInputs(),
		Output: OutputConfig{Format: constants.OutputFormatPretty},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := commute.DefaultInputs()
	v.SetDefault("inputs.daysInOffice", defaults.DaysInOffice)
	v.SetDefault("inputs.ptoDays", defaults.PTODays)
	v.SetDefault("inputs.holidays", defaults.Holidays)
	v.SetDefault("inputs.sickDays", defaults.SickDays)
	v.SetDefault("inputs.oneWayDistance", defaults.OneWayDistance)
	v.SetDefault("inputs.gasPrice", defaults.GasPrice)
	v.SetDefault("inputs.mpg", defaults.MPG)
	v.SetDefault("inputs.monthlyParking", defaults.MonthlyParking)
	v.SetDefault("inputs.tollsPerDay", defaults.TollsPerDay)
	v.SetDefault("inputs.maintenancePerMile", defaults.MaintenancePerMile)
	v.SetDefault("inputs.annualPassPrice", defaults.AnnualPassPrice)
	v.SetDefault("inputs.usePreTaxBenefit", defaults.UsePreTaxBenefit)
	v.SetDefault("inputs.taxRate", defaults.TaxRate)
	v.SetDefault("inputs.hybridDriveDays", defaults.HybridDriveDays)

	// Optional inputs have no default; bind them so the environment can
	// still supply them.
	_ = v.BindEnv("inputs.startMonth")
	_ = v.BindEnv("inputs.dailyTicketPrice")

	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}
