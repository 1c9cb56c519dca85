// Package order assembles the result of extracting one vendor invoice: its
// resolved date and its items.
package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/trade-invoice-csv/internal/dateresolver"
	"fjacquet/trade-invoice-csv/internal/lineitem"
	"fjacquet/trade-invoice-csv/internal/logging"
	"fjacquet/trade-invoice-csv/internal/models"
	"fjacquet/trade-invoice-csv/internal/parsererror"
	"fjacquet/trade-invoice-csv/internal/pdftext"
	"fjacquet/trade-invoice-csv/internal/vendor"
)

// Order is one extracted invoice. It is not modified after construction.
type Order struct {
	vendor    vendor.Profile
	date      time.Time
	items     []models.Item
	textLines []string
}

// Vendor returns the profile the invoice was read with.
func (o *Order) Vendor() vendor.Profile { return o.vendor }

// Date returns the resolved invoice date (UTC midnight).
func (o *Order) Date() time.Time { return o.date }

// Items returns a copy of the extracted items in order of appearance.
func (o *Order) Items() []models.Item {
	return append([]models.Item(nil), o.items...)
}

// TextLines returns a copy of the raw lines the order was built from.
func (o *Order) TextLines() []string {
	return append([]string(nil), o.textLines...)
}

func (o *Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vendor: %s \n\nDate: %s \n\n--------------------\n\n",
		o.vendor, o.date.Format("2006-01-02"))
	for _, item := range o.items {
		b.WriteString(" - ")
		b.WriteString(item.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Extractor builds Orders from PDF files.
type Extractor struct {
	source pdftext.LineSource
	logger logging.Logger
	now    func() time.Time
}

// NewExtractor creates an Extractor reading text through source. A nil
// source uses the native PDF reader; a nil logger logs at info level.
func NewExtractor(source pdftext.LineSource, logger logging.Logger) *Extractor {
	if source == nil {
		source = pdftext.NewNativeSource()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Extractor{source: source, logger: logger, now: time.Now}
}

// WithClock returns a copy of e whose two-digit-year expansion uses now.
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	c := *e
	c.now = now
	return &c
}

// Extract reads pdfPath and builds its Order. PDF decoding failures and a
// missing invoice date are fatal; finding no items is not.
func (e *Extractor) Extract(profile vendor.Profile, pdfPath string) (*Order, error) {
	log := e.logger.WithFields(
		logging.Field{Key: logging.FieldVendor, Value: profile.ID()},
		logging.Field{Key: logging.FieldInputFile, Value: pdfPath})

	log.Info("Reading invoice")

	lines, err := e.source.Lines(pdfPath)
	if err != nil {
		return nil, err
	}
	log.Debug("Extracted text", logging.Field{Key: logging.FieldCount, Value: len(lines)})

	return e.build(profile, lines, log)
}

// FromLines builds an Order from already extracted text lines.
func (e *Extractor) FromLines(profile vendor.Profile, lines []string) (*Order, error) {
	log := e.logger.WithField(logging.FieldVendor, profile.ID())
	return e.build(profile, append([]string(nil), lines...), log)
}

func (e *Extractor) build(profile vendor.Profile, lines []string, log logging.Logger) (*Order, error) {
	o := &Order{vendor: profile, textLines: lines}

	date, err := dateresolver.NewResolver(log, e.now).Resolve(profile.DateTemplate(), lines)
	if err != nil {
		if errors.Is(err, dateresolver.ErrNoDateFound) {
			return nil, &parsererror.DateNotFoundError{Vendor: profile.Name(), Template: profile.DateFormat()}
		}
		return nil, err
	}
	o.date = date

	items, err := lineitem.NewMatcher(profile, log).Items(lines)
	if err != nil {
		return nil, err
	}
	o.items = items

	if len(items) == 0 {
		log.Warn("No items found in invoice")
	} else {
		log.Info("Extracted items", logging.Field{Key: logging.FieldCount, Value: len(items)})
	}

	return o, nil
}
