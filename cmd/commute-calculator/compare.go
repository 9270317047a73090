package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/commute-calculator/internal/commute"
	"github.com/iwvelando/commute-calculator/internal/config"
	"github.com/iwvelando/commute-calculator/internal/summary"
	"github.com/iwvelando/commute-calculator/pkg/constants"
	"github.com/iwvelando/commute-calculator/pkg/output"
	"github.com/iwvelando/commute-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type compareOptions struct {
	configPath       string
	requireConfig    bool
	outputFormat     string
	logLevel         string
	startMonth       *int
	dailyTicketPrice *float64
}

func compareCmd() *cobra.Command {
	var (
		opts        compareOptions
		startMonth  int
		dailyTicket float64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare commute strategies for the inputs in a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			opts.requireConfig = flags.Changed("config")
			opts.logLevel = logLevel
			if flags.Changed("start-month") {
				opts.startMonth = commute.IntPtr(startMonth)
			}
			if flags.Changed("daily-ticket-price") {
				opts.dailyTicketPrice = commute.Float64Ptr(dailyTicket)
			}
			return runCompare(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.Flags().StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	cmd.Flags().IntVar(&startMonth, "start-month", 0, "first commuting month (1-12); prorates the year")
	cmd.Flags().Float64Var(&dailyTicket, "daily-ticket-price", 0, "prepaid daily ticket price; adds the ticket scenarios")
	return cmd
}

// loadCompareConfiguration reads the config file. A missing default file
// falls back to the defaults; a missing file named on the command line is
// an error.
func loadCompareConfiguration(opts compareOptions) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(opts.configPath)
	if err == nil {
		return conf, nil
	}
	if opts.requireConfig {
		return nil, err
	}
	if _, statErr := os.Stat(opts.configPath); !errors.Is(statErr, fs.ErrNotExist) {
		return nil, err
	}
	// No file; still honor COMMUTE_* overrides.
	return config.LoadConfigurationFromReader(strings.NewReader(""))
}

func runCompare(w io.Writer, opts compareOptions) error {
	conf, err := loadCompareConfiguration(opts)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}

	logger, err := initializeLogger(conf.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	if opts.startMonth != nil {
		conf.Inputs.StartMonth = opts.startMonth
	}
	if opts.dailyTicketPrice != nil {
		conf.Inputs.DailyTicketPrice = opts.dailyTicketPrice
	}

	for _, note := range conf.Sanitize() {
		logger.Warn("Adjusted input: "+note,
			zap.String("op", "main.runCompare"),
		)
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.runCompare"),
		)
	}

	if err := validation.ValidateInputs(conf.Inputs); err != nil {
		return err
	}

	result, err := commute.Calculate(conf.Inputs)
	if err != nil {
		return fmt.Errorf("failed to compute comparison: %w", err)
	}

	report := summary.Build(logger, result)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(w, report)
	case constants.OutputFormatCSV:
		output.CsvFormat(w, report)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(w, report); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
	}
	return nil
}
