package common_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/trade-invoice-csv/cmd/common"
	"fjacquet/trade-invoice-csv/internal/ledger"
	"fjacquet/trade-invoice-csv/internal/logging"
	"fjacquet/trade-invoice-csv/internal/order"
	"fjacquet/trade-invoice-csv/internal/parsererror"
	"fjacquet/trade-invoice-csv/internal/pdftext"
	"fjacquet/trade-invoice-csv/internal/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingExporter struct{}

func (failingExporter) Export(*order.Order, string) (int, error) {
	return 0, errors.New("disk full")
}

func toolstation(t *testing.T) vendor.Profile {
	t.Helper()
	p, err := vendor.Default().Lookup(vendor.Toolstation)
	require.NoError(t, err)
	return p
}

func TestValidatePaths(t *testing.T) {
	dir := t.TempDir()
	invoice := filepath.Join(dir, "invoice.pdf")
	require.NoError(t, os.WriteFile(invoice, []byte("%PDF-1.4"), 0600))

	assert.NoError(t, common.ValidatePaths(invoice, "ledger.csv"))

	var formatErr *parsererror.InvalidFormatError
	assert.ErrorAs(t, common.ValidatePaths("invoice.txt", "ledger.csv"), &formatErr)
	assert.ErrorAs(t, common.ValidatePaths(invoice, "ledger.xlsx"), &formatErr)
	assert.ErrorAs(t, common.ValidatePaths(filepath.Join(dir, "missing.pdf"), "ledger.xlsx"), &formatErr,
		"extensions are checked before existence")

	err := common.ValidatePaths(filepath.Join(dir, "missing.pdf"), "ledger.csv")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateInput(t *testing.T) {
	dir := t.TempDir()
	invoice := filepath.Join(dir, "invoice.pdf")
	require.NoError(t, os.WriteFile(invoice, []byte("%PDF-1.4"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.pdf"), 0750))

	assert.NoError(t, common.ValidateInput(invoice))
	assert.ErrorIs(t, common.ValidateInput(filepath.Join(dir, "folder.pdf")), os.ErrNotExist)

	var formatErr *parsererror.InvalidFormatError
	assert.ErrorAs(t, common.ValidateInput("invoice.png"), &formatErr)
}

func TestProcessFile(t *testing.T) {
	logger := logging.NewMockLogger()
	source := pdftext.NewStaticSource("Order date 2024-01-09", "12345 Hacksaw Blades 4 2.25", "Total 9.00")
	extractor := order.NewExtractor(source, logger)
	out := filepath.Join(t.TempDir(), "ledger.csv")

	n, err := common.ProcessFile(extractor, ledger.NewExporter(',', logger), toolstation(t), "invoice.pdf", out, logger)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Toolstation,,09/01/2024,Hacksaw Blades,4,2.25", strings.TrimSpace(string(data)))
	assert.True(t, logger.HasEntry("INFO", "Invoice processed"))
}

func TestProcessFile_ExtractionFailureWritesNothing(t *testing.T) {
	logger := logging.NewMockLogger()
	source := &pdftext.StaticSource{Err: &parsererror.ExtractionError{FilePath: "broken.pdf", Err: errors.New("bad xref")}}
	out := filepath.Join(t.TempDir(), "ledger.csv")

	_, err := common.ProcessFile(order.NewExtractor(source, logger), ledger.NewExporter(',', logger), toolstation(t), "broken.pdf", out, logger)
	var extractionErr *parsererror.ExtractionError
	require.ErrorAs(t, err, &extractionErr)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessFile_ExportFailure(t *testing.T) {
	logger := logging.NewMockLogger()
	source := pdftext.NewStaticSource("2024-01-09", "12345 Hacksaw Blades 4 2.25")

	_, err := common.ProcessFile(order.NewExtractor(source, logger), failingExporter{}, toolstation(t), "invoice.pdf", "ledger.csv", logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
