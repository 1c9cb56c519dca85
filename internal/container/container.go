// Package container provides dependency injection for the trade-invoice-csv
// application. It centralizes the creation and wiring of the extraction
// pipeline so commands receive fully built components.
package container

import (
	"fmt"

	"fjacquet/trade-invoice-csv/internal/config"
	"fjacquet/trade-invoice-csv/internal/ledger"
	"fjacquet/trade-invoice-csv/internal/logging"
	"fjacquet/trade-invoice-csv/internal/order"
	"fjacquet/trade-invoice-csv/internal/pdftext"
	"fjacquet/trade-invoice-csv/internal/vendor"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; dependencies are only reachable
// through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	source    pdftext.LineSource
	registry  *vendor.Registry
	extractor *order.Extractor
	exporter  *ledger.Exporter
}

// NewContainer creates and wires all application dependencies from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	return build(cfg, logger)
}

// NewContainerWithLogger wires dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return build(cfg, logger)
}

func build(cfg *config.Config, logger logging.Logger) (*Container, error) {
	source, err := newLineSource(cfg.PDF.Extractor)
	if err != nil {
		return nil, err
	}

	registry, err := vendor.LoadRegistry(cfg.Vendors.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor profiles: %w", err)
	}

	extractor := order.NewExtractor(source, logger)
	exporter := ledger.NewExporter(cfg.Delimiter(), logger)

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldExtractor, Value: cfg.PDF.Extractor},
		logging.Field{Key: "vendors_count", Value: len(registry.IDs())})

	return &Container{
		logger:    logger,
		config:    cfg,
		source:    source,
		registry:  registry,
		extractor: extractor,
		exporter:  exporter,
	}, nil
}

func newLineSource(name string) (pdftext.LineSource, error) {
	switch name {
	case "", config.ExtractorNative:
		return pdftext.NewNativeSource(), nil
	case config.ExtractorPdftotext:
		return pdftext.NewPdftotextSource(), nil
	default:
		return nil, fmt.Errorf("unknown pdf extractor: %s", name)
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLineSource returns the configured PDF text extractor.
func (c *Container) GetLineSource() pdftext.LineSource {
	return c.source
}

// GetRegistry returns the vendor profile registry.
func (c *Container) GetRegistry() *vendor.Registry {
	return c.registry
}

// GetExtractor returns the order extractor.
func (c *Container) GetExtractor() *order.Extractor {
	return c.extractor
}

// GetExporter returns the CSV ledger exporter.
func (c *Container) GetExporter() *ledger.Exporter {
	return c.exporter
}
