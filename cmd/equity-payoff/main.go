package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iwvelando/equity-payoff/internal/config"
	"github.com/iwvelando/equity-payoff/internal/logging"
	"github.com/iwvelando/equity-payoff/pkg/constants"
	"github.com/iwvelando/equity-payoff/pkg/loans"
	"github.com/iwvelando/equity-payoff/pkg/output"
	"github.com/iwvelando/equity-payoff/pkg/payoff"
	"github.com/iwvelando/equity-payoff/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, xlsx")
	outputFileFlag := flag.String("output-file", "", "write csv or xlsx output to this file instead of stdout")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	skipValidation := flag.Bool("skip-validation", false, "compute scenarios even when loan inputs fail validation")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over config
	if *outputFormatFlag != "" {
		conf.Output.Format = *outputFormatFlag
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
	if *outputFileFlag != "" {
		conf.Output.File = *outputFileFlag
	}

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	inputCheck := validation.ValidateInputs(validation.FromInputs(conf.Loan))
	if !inputCheck.IsValid() {
		for _, fieldErr := range inputCheck.Errors() {
			logger.Warn(fieldErr.Message,
				zap.String("op", "main"),
				zap.String("field", fieldErr.Field),
			)
		}
		if !*skipValidation {
			logger.Fatal("loan inputs failed validation",
				zap.String("op", "main"),
				zap.Error(inputCheck.Err()),
			)
		}
	}

	calculator := newCalculator(logger, conf)
	scenarios := calculator.Scenarios(conf.Loan)
	current := calculator.CurrentLoanSchedule(conf.Loan)

	logger.Info("computed payoff scenarios",
		zap.String("op", "main"),
		zap.Float64("negativeEquity", conf.Loan.NegativeEquity()),
		zap.Int("scenarios", len(scenarios)),
		zap.Int("currentLoanMonths", len(current)),
		zap.Bool("currentLoanPaidOff", loans.PaidOff(current)),
	)

	if err := writeOutput(conf, scenarios, current, time.Now()); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.String("format", conf.Output.Format),
			zap.Error(err),
		)
	}
}

// newCalculator builds a calculator from the configured timelines and
// schedule horizon.
func newCalculator(logger *zap.Logger, conf *config.Configuration) *payoff.Calculator {
	return payoff.NewCalculator(logger, conf.Timelines, conf.Schedule.MaxMonths)
}

// writeOutput renders scenarios in the configured format. The current loan
// projection is only part of the pretty output.
func writeOutput(conf *config.Configuration, scenarios []payoff.PayoffScenario, current []loans.AmortizationEntry, generatedAt time.Time) error {
	var data []byte
	switch conf.Output.Format {
	case constants.OutputFormatPretty:
		output.PrettyFormat(conf.Loan, scenarios)
		fmt.Printf("\n%s\n", output.CurrentLoanSummary(current))
		return nil
	case constants.OutputFormatCSV:
		if conf.Output.File == "" {
			output.CsvFormat(conf.Loan, scenarios, generatedAt)
			fmt.Println()
			return nil
		}
		data = []byte(output.CsvString(conf.Loan, scenarios, generatedAt) + "\n")
	case constants.OutputFormatXLSX:
		workbook, err := output.WorkbookBytes(conf.Loan, scenarios, generatedAt)
		if err != nil {
			return err
		}
		data = workbook
	default:
		return validation.ValidateOutputFormat(conf.Output.Format)
	}

	if conf.Output.File == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(conf.Output.File, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", conf.Output.File, err)
	}
	return nil
}
