// Package constants provides shared constants for the commute-calculator application.
package constants

// Calendar constants
const (
	// WeeksPerYear is the number of work weeks counted in a year
	WeeksPerYear = 52

	// WorkDaysPerWeek is the length of a standard work week
	WorkDaysPerWeek = 5

	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// RoundTripLegs is the number of one-way trips in a commute day
	RoundTripLegs = 2
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Schedule bounds enforced by collaborators before calling the engine
const (
	MinDaysInOffice = 1
	MaxDaysInOffice = 7
	MinStartMonth   = 1
	MaxStartMonth   = 12
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "commute.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "commute.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment variable overrides, e.g. COMMUTE_INPUTS_GASPRICE
	EnvPrefix = "COMMUTE"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultRateLimitPerMinute is the default number of compare requests per client per minute
	DefaultRateLimitPerMinute = 600

	// DefaultRateLimitBurst is the default token bucket burst per client
	DefaultRateLimitBurst = 30
)
