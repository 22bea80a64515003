// Package constants provides shared constants for the equity-payoff application.
package constants

import "time"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// PayoffBalanceThreshold is the remaining balance at or below which a
	// schedule is considered paid off.
	PayoffBalanceThreshold = 0.01

	// DefaultScheduleMaxMonths caps amortization schedule generation.
	DefaultScheduleMaxMonths = 360
)

// DefaultTimelines are the payoff horizons, in months, evaluated for every
// input set. Order is ascending and significant.
var DefaultTimelines = []int{6, 12, 18, 24}

// Strategy tiers
const (
	// AggressiveMaxMonths is the longest timeline labelled aggressive
	AggressiveMaxMonths = 6

	// ModerateMaxMonths is the longest timeline labelled moderate
	ModerateMaxMonths = 12

	StrategyAggressive   = "Aggressive - Fastest payoff"
	StrategyModerate     = "Moderate - Balanced approach"
	StrategyConservative = "Conservative - Lower monthly burden"

	// NoNegativeEquityNote labels scenarios where the vehicle covers the loan.
	NoNegativeEquityNote = "No negative equity - vehicle value exceeds loan balance"
)

// Validation bounds
const (
	// MinInterestRate is the lowest accepted annual interest rate percentage
	MinInterestRate = 0.0

	// MaxInterestRate is the highest accepted annual interest rate percentage
	MaxInterestRate = 50.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatXLSX is the spreadsheet workbook output format
	OutputFormatXLSX = "xlsx"

	// ExportFilePrefix prefixes downloaded export file names
	ExportFilePrefix = "negative-equity-scenarios"

	// ExportDateLayout is the date stamp used in export file names
	ExportDateLayout = "2006-01-02"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024

	// MaxRequestScheduleMonths bounds the horizon a schedule request may ask for
	MaxRequestScheduleMonths = 1200

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)
