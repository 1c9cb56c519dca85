package pdftext

import (
	"fmt"

	"fjacquet/trade-invoice-csv/internal/parsererror"

	"github.com/ledongthuc/pdf"
)

// NativeSource reads PDF text in-process with github.com/ledongthuc/pdf.
// Text is regrouped into visual rows from its page coordinates, so a table
// row comes out as one line whether it was drawn cell by cell or as a run of
// line moves inside one text object.
type NativeSource struct{}

// NewNativeSource creates a NativeSource.
func NewNativeSource() *NativeSource {
	return &NativeSource{}
}

// Lines returns the rows of every page, top to bottom, pages in order.
func (s *NativeSource) Lines(pdfPath string) (lines []string, err error) {
	// The pdf package panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = &parsererror.ExtractionError{FilePath: pdfPath, Err: fmt.Errorf("panic while decoding: %v", r)}
		}
	}()

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, &parsererror.ExtractionError{FilePath: pdfPath, Err: err}
	}
	defer f.Close()

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		lines = append(lines, pageRows(page)...)
	}

	return lines, nil
}
