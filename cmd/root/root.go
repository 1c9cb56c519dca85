// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/trade-invoice-csv/cmd/common"
	"fjacquet/trade-invoice-csv/internal/config"
	"fjacquet/trade-invoice-csv/internal/container"
	"fjacquet/trade-invoice-csv/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Vendor string
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command. Run on its own it extracts one invoice and
	// appends its items to a ledger.
	Cmd = &cobra.Command{
		Use:   "trade-invoice-csv",
		Short: "Extract line items from trade supplier PDF invoices into a CSV ledger.",
		Long: `trade-invoice-csv reads a PDF invoice from a registered trade supplier,
finds its line items and invoice date, and appends one CSV row per item to a ledger.

Example:
  trade-invoice-csv -v SCREWFIX -i invoice.pdf -o ledger.csv`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initialize,
		RunE:              run,
	}

	// SharedFlags holds the vendor and file flags used by every command
	SharedFlags = CommonFlags{}

	// ConfigFile is the optional --config path
	ConfigFile string
	// LogLevel overrides log.level when set
	LogLevel string
	// LogFormat overrides log.format when set
	LogFormat string

	// AppConfig is the configuration loaded before any command runs
	AppConfig *config.Config
	// AppContainer holds the wired dependencies for the current run
	AppContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Vendor, "vendor", "v", "", "Vendor identifier (e.g. SCREWFIX, TOOLSTATION)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input_pdf", "i", "", "Input PDF invoice")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output_csv", "o", "", "CSV ledger to append to")

	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default $HOME/.trade-invoice-csv/config.yaml)")
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&LogFormat, "log-format", "", "Log format (text, json)")
}

func initialize(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	cfg, err := config.InitializeConfig(ConfigFile)
	if err != nil {
		return err
	}
	if LogLevel != "" {
		cfg.Log.Level = LogLevel
	}
	if LogFormat != "" {
		cfg.Log.Format = LogFormat
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}
	Log.SetLevel(level)
	if cfg.Log.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	c, err := container.NewContainerWithLogger(cfg, GetLogrusAdapter())
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = c
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if SharedFlags.Vendor == "" || SharedFlags.Input == "" || SharedFlags.Output == "" {
		return fmt.Errorf("--vendor, --input_pdf and --output_csv are required")
	}
	if err := common.ValidatePaths(SharedFlags.Input, SharedFlags.Output); err != nil {
		return err
	}

	c := GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}

	profile, err := c.GetRegistry().Lookup(SharedFlags.Vendor)
	if err != nil {
		return err
	}

	count, err := common.ProcessFile(c.GetExtractor(), c.GetExporter(), profile, SharedFlags.Input, SharedFlags.Output, c.GetLogger())
	if err != nil {
		return err
	}

	cmd.Printf("Appended %d item(s) to %s\n", count, SharedFlags.Output)
	return nil
}

// GetLogrusAdapter returns the shared logger behind the logging.Logger interface
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// GetContainer returns the dependency container built for the current run
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the configuration loaded for the current run
func GetConfig() *config.Config {
	return AppConfig
}
