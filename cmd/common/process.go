// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"os"

	"fjacquet/trade-invoice-csv/internal/fileutils"
	"fjacquet/trade-invoice-csv/internal/logging"
	"fjacquet/trade-invoice-csv/internal/order"
	"fjacquet/trade-invoice-csv/internal/validation"
	"fjacquet/trade-invoice-csv/internal/vendor"
)

// OrderExtractor reads one invoice into an Order.
type OrderExtractor interface {
	Extract(profile vendor.Profile, pdfPath string) (*order.Order, error)
}

// LedgerExporter appends an Order to a CSV ledger.
type LedgerExporter interface {
	Export(o *order.Order, csvPath string) (int, error)
}

// ValidateInput checks that inputFile is an existing .pdf file.
func ValidateInput(inputFile string) error {
	if err := validation.PDFFile(inputFile); err != nil {
		return err
	}
	return requireFile(inputFile)
}

// ValidatePaths checks the input and output extensions, then that the input
// exists, before any work is done.
func ValidatePaths(inputFile, outputFile string) error {
	if err := validation.PDFFile(inputFile); err != nil {
		return err
	}
	if err := validation.CSVFile(outputFile); err != nil {
		return err
	}
	return requireFile(inputFile)
}

func requireFile(path string) error {
	if !fileutils.FileExists(path) {
		return fmt.Errorf("input file %s: %w", path, os.ErrNotExist)
	}
	return nil
}

// ProcessFile extracts the items of one invoice and appends them to the
// ledger at outputFile. It returns the number of rows appended.
func ProcessFile(extractor OrderExtractor, exporter LedgerExporter, profile vendor.Profile, inputFile, outputFile string, log logging.Logger) (int, error) {
	log = log.WithFields(
		logging.Field{Key: logging.FieldVendor, Value: profile.ID()},
		logging.Field{Key: logging.FieldInputFile, Value: inputFile})

	o, err := extractor.Extract(profile, inputFile)
	if err != nil {
		return 0, fmt.Errorf("error extracting %s: %w", inputFile, err)
	}

	count, err := exporter.Export(o, outputFile)
	if err != nil {
		return 0, fmt.Errorf("error exporting to %s: %w", outputFile, err)
	}

	log.Info("Invoice processed",
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: count},
		logging.Field{Key: "date", Value: o.Date().Format("2006-01-02")})
	return count, nil
}
