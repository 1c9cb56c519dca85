// Package ledger appends extracted invoice items to a CSV ledger file.
//
// Rows have no header and are laid out for pasting into a bookkeeping
// spreadsheet:
//
//	vendor, <blank category>, DD/MM/YYYY, item name, units, unit cost
package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"fjacquet/trade-invoice-csv/internal/fileutils"
	"fjacquet/trade-invoice-csv/internal/logging"
	"fjacquet/trade-invoice-csv/internal/order"

	"github.com/gocarina/gocsv"
)

// DateLayout is the ledger's date column format (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// Row is one ledger line. Category is always written blank so it can be
// filled in by hand.
type Row struct {
	Vendor   string `csv:"vendor"`
	Category string `csv:"category"`
	Date     string `csv:"date"`
	Item     string `csv:"item"`
	Units    string `csv:"units"`
	UnitCost string `csv:"unit_cost"`
}

// Rows converts an order into ledger rows, one per item in item order.
func Rows(o *order.Order) []Row {
	date := o.Date().Format(DateLayout)
	items := o.Items()

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{
			Vendor:   o.Vendor().Name(),
			Category: "",
			Date:     date,
			Item:     item.Name,
			Units:    strconv.Itoa(item.Units),
			UnitCost: item.UnitCost.StringFixed(2),
		})
	}
	return rows
}

// Exporter appends orders to CSV files.
type Exporter struct {
	delimiter rune
	logger    logging.Logger
}

// NewExporter creates an Exporter writing fields separated by delimiter.
func NewExporter(delimiter rune, logger logging.Logger) *Exporter {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Exporter{delimiter: delimiter, logger: logger}
}

// Export appends one row per item of o to csvPath, creating the file if
// needed, and returns the number of rows written. Running the same order
// twice appends its rows twice.
func (e *Exporter) Export(o *order.Order, csvPath string) (count int, err error) {
	rows := Rows(o)

	file, err := fileutils.OpenForAppend(csvPath)
	if err != nil {
		return 0, fmt.Errorf("error opening ledger: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing ledger: %w", cerr)
		}
	}()

	if len(rows) == 0 {
		e.logger.Warn("No items to export",
			logging.Field{Key: logging.FieldOutputFile, Value: csvPath})
		return 0, nil
	}

	w := csv.NewWriter(file)
	w.Comma = e.delimiter

	if err := gocsv.MarshalCSVWithoutHeaders(&rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		return 0, fmt.Errorf("error writing ledger rows: %w", err)
	}

	e.logger.Info("Appended items to ledger",
		logging.Field{Key: logging.FieldOutputFile, Value: csvPath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(e.delimiter)})

	return len(rows), nil
}

// ReadRows reads a ledger written by Exporter back into rows.
func ReadRows(csvPath string, delimiter rune) ([]Row, error) {
	file, err := os.Open(csvPath) // #nosec G304 -- CLI tool reads user-provided ledger paths
	if err != nil {
		return nil, fmt.Errorf("error opening ledger: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	r := csv.NewReader(file)
	r.Comma = delimiter

	var rows []Row
	if err := gocsv.UnmarshalCSVWithoutHeaders(r, &rows); err != nil {
		return nil, fmt.Errorf("error parsing ledger: %w", err)
	}
	return rows, nil
}
