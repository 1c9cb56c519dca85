// Package pdftext turns a PDF document into the ordered text lines the
// extraction pipeline works on: pages in document order, lines in page order.
package pdftext

import (
	"strings"
)

// LineSource produces the text lines of a PDF document.
type LineSource interface {
	Lines(pdfPath string) ([]string, error)
}

// StaticSource returns fixed lines regardless of the path. It is used by
// tests and to re-run extraction over previously retained lines.
type StaticSource struct {
	TextLines []string
	Err       error
}

// NewStaticSource creates a StaticSource over lines.
func NewStaticSource(lines ...string) *StaticSource {
	return &StaticSource{TextLines: lines}
}

// Lines returns a copy of the configured lines, or the configured error.
func (s *StaticSource) Lines(string) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]string(nil), s.TextLines...), nil
}

// splitLines splits page text the way a reader sees it: on \n, \r\n or \r.
// A trailing line break does not produce an empty last line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
