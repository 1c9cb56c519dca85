// Package parsererror defines the typed errors returned by the extraction
// pipeline. Each type can be matched with errors.As.
package parsererror

import "fmt"

// ParseError is returned when a token sitting at a validated field position
// cannot be converted to the field's type.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError is returned when a path argument does not carry the
// expected file extension.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format for '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// ExtractionError wraps a failure to read text out of a PDF document.
type ExtractionError struct {
	FilePath string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed for '%s': %v", e.FilePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DateNotFoundError is returned when no text line contains a date matching
// the vendor's date template.
type DateNotFoundError struct {
	Vendor   string
	Template string
}

func (e *DateNotFoundError) Error() string {
	return fmt.Sprintf("no date matching '%s' found in %s invoice", e.Template, e.Vendor)
}

// ProfileError is returned when a vendor profile definition cannot be loaded.
type ProfileError struct {
	Vendor string
	Reason string
	Err    error
}

func (e *ProfileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vendor profile %s: %s: %v", e.Vendor, e.Reason, e.Err)
	}
	return fmt.Sprintf("vendor profile %s: %s", e.Vendor, e.Reason)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}
