package pdftext

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"fjacquet/trade-invoice-csv/internal/parsererror"
)

// PdftotextSource shells out to poppler's pdftotext with -layout, which keeps
// table columns on one line for invoices the native reader splits apart.
type PdftotextSource struct {
	// Binary defaults to "pdftotext" on PATH.
	Binary string
}

// NewPdftotextSource creates a PdftotextSource using pdftotext from PATH.
func NewPdftotextSource() *PdftotextSource {
	return &PdftotextSource{Binary: "pdftotext"}
}

// Lines runs pdftotext and splits its output into pages on form feeds and
// pages into lines.
func (s *PdftotextSource) Lines(pdfPath string) ([]string, error) {
	binary := s.Binary
	if binary == "" {
		binary = "pdftotext"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(binary, "-layout", "-enc", "UTF-8", pdfPath, "-") // #nosec G204 -- fixed binary, user-chosen input file
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &parsererror.ExtractionError{
			FilePath: pdfPath,
			Err:      fmt.Errorf("running %s: %w: %s", binary, err, strings.TrimSpace(stderr.String())),
		}
	}

	return splitPages(stdout.String()), nil
}

func splitPages(output string) []string {
	var lines []string
	for _, page := range strings.Split(output, "\f") {
		lines = append(lines, splitLines(page)...)
	}
	return lines
}
