// Package validation checks command-line path arguments before any work starts.
package validation

import (
	"path/filepath"
	"strings"

	"fjacquet/trade-invoice-csv/internal/parsererror"
)

// Accepted argument extensions.
const (
	ExtPDF = ".pdf"
	ExtCSV = ".csv"
)

// RequireExtension returns an InvalidFormatError unless path ends in ext.
// The comparison is case-sensitive, so "INVOICE.PDF" is rejected.
func RequireExtension(path, ext string) error {
	if path == "" || !strings.HasSuffix(path, ext) {
		return &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: ext,
			Msg:            "must be a " + ext + " file",
		}
	}
	return nil
}

// PDFFile validates an input invoice path.
func PDFFile(path string) error {
	return RequireExtension(path, ExtPDF)
}

// CSVFile validates an output ledger path.
func CSVFile(path string) error {
	return RequireExtension(path, ExtCSV)
}

// IsPDF reports whether a directory entry name looks like an invoice.
func IsPDF(name string) bool {
	return filepath.Ext(name) == ExtPDF
}
