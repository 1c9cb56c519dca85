// Package batch handles batch processing of invoice directories
package batch

import (
	"fmt"
	"path/filepath"

	"fjacquet/trade-invoice-csv/cmd/common"
	"fjacquet/trade-invoice-csv/cmd/root"
	"fjacquet/trade-invoice-csv/internal/fileutils"
	"fjacquet/trade-invoice-csv/internal/logging"
	"fjacquet/trade-invoice-csv/internal/validation"
	"fjacquet/trade-invoice-csv/internal/vendor"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process invoices from a directory",
	Long: `Batch process every PDF invoice in a directory and append their items to one ledger.

Files are processed in name order. A file that fails is logged and skipped; the
remaining files are still processed and the command exits with an error.

Example:
  trade-invoice-csv batch -v SCREWFIX -i invoices/ -o ledger.csv`,
	RunE: batchFunc,
}

// Result summarises a batch run.
type Result struct {
	Files  int
	Rows   int
	Failed []string
}

func batchFunc(cmd *cobra.Command, args []string) error {
	inputDir := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output

	if root.SharedFlags.Vendor == "" || inputDir == "" || outputFile == "" {
		return fmt.Errorf("--vendor, --input_pdf (a directory) and --output_csv are required")
	}
	if !fileutils.DirectoryExists(inputDir) {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}
	if err := validation.CSVFile(outputFile); err != nil {
		return err
	}

	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}

	profile, err := c.GetRegistry().Lookup(root.SharedFlags.Vendor)
	if err != nil {
		return err
	}

	result, err := ProcessDirectory(c.GetExtractor(), c.GetExporter(), profile, inputDir, outputFile, c.GetLogger())
	if err != nil {
		return err
	}

	cmd.Printf("Processed %d file(s), appended %d item(s) to %s\n", result.Files, result.Rows, outputFile)
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d file(s) failed: %v", len(result.Failed), result.Files, result.Failed)
	}
	return nil
}

// ProcessDirectory runs every PDF in inputDir through the pipeline,
// appending to outputFile in file name order. A failing file does not stop
// the remaining ones; it is recorded in Result.Failed.
func ProcessDirectory(extractor common.OrderExtractor, exporter common.LedgerExporter, profile vendor.Profile, inputDir, outputFile string, logger logging.Logger) (Result, error) {
	files, err := fileutils.ListFiles(inputDir, validation.IsPDF)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read input directory: %w", err)
	}

	if len(files) == 0 {
		logger.Warn("No PDF files found in input directory",
			logging.Field{Key: logging.FieldInputFile, Value: inputDir})
		return Result{}, nil
	}

	logger.Info("Found files for processing",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	result := Result{Files: len(files)}
	for _, file := range files {
		count, err := common.ProcessFile(extractor, exporter, profile, file, outputFile, logger)
		if err != nil {
			logger.WithError(err).Error("Failed to process invoice",
				logging.Field{Key: logging.FieldInputFile, Value: filepath.Base(file)})
			result.Failed = append(result.Failed, filepath.Base(file))
			continue
		}
		result.Rows += count
	}

	logger.Info("Batch processing completed",
		logging.Field{Key: "files", Value: result.Files},
		logging.Field{Key: "failed", Value: len(result.Failed)},
		logging.Field{Key: logging.FieldCount, Value: result.Rows})

	return result, nil
}
