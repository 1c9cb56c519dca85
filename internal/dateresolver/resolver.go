package dateresolver

import (
	"errors"
	"strconv"
	"time"

	"fjacquet/trade-invoice-csv/internal/logging"
)

// ErrNoDateFound is returned by Resolve when no line holds a parsable date.
var ErrNoDateFound = errors.New("no date found")

// Resolver scans text lines for template-shaped dates.
type Resolver struct {
	logger logging.Logger
	now    func() time.Time
}

// NewResolver creates a Resolver. now supplies the current year used to
// expand two-digit years; nil means time.Now.
func NewResolver(logger logging.Logger, now func() time.Time) *Resolver {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if now == nil {
		now = time.Now
	}
	return &Resolver{logger: logger, now: now}
}

// YearPrefix returns the century digits prepended to two-digit years, or ""
// for four-digit templates.
func (r *Resolver) YearPrefix(t Template) string {
	if !t.ShortYear() {
		return ""
	}
	return strconv.Itoa(r.now().Year())[0:2]
}

// Dates returns every parsable date across all lines, in order of
// appearance. Matches that do not form a real calendar date are skipped.
func (r *Resolver) Dates(t Template, lines []string) []time.Time {
	prefix := r.YearPrefix(t)

	var dates []time.Time
	for n, line := range lines {
		matches, err := t.FindAll(line)
		if err != nil {
			r.logger.WithError(err).Warn("Date pattern evaluation failed, keeping earlier matches on the line",
				logging.Field{Key: logging.FieldLineNumber, Value: n + 1},
				logging.Field{Key: logging.FieldTemplate, Value: t.Format()})
		}
		for _, match := range matches {
			d, ok := t.Parse(match, prefix)
			if !ok {
				r.logger.Debug("Ignoring date-shaped text that is not a calendar date",
					logging.Field{Key: logging.FieldLineNumber, Value: n + 1},
					logging.Field{Key: "match", Value: match})
				continue
			}
			dates = append(dates, d)
		}
	}
	return dates
}

// Resolve returns the chronologically latest date found in lines.
// Invoices print several dates (order, dispatch, due) and the latest one is
// taken as the invoice date.
func (r *Resolver) Resolve(t Template, lines []string) (time.Time, error) {
	dates := r.Dates(t, lines)
	if len(dates) == 0 {
		return time.Time{}, ErrNoDateFound
	}

	latest := dates[0]
	for _, d := range dates[1:] {
		if d.After(latest) {
			latest = d
		}
	}

	r.logger.Debug("Resolved invoice date",
		logging.Field{Key: logging.FieldTemplate, Value: t.Format()},
		logging.Field{Key: logging.FieldCount, Value: len(dates)},
		logging.Field{Key: "date", Value: latest.Format("2006-01-02")})

	return latest, nil
}

// Parse slices day, month and year out of a pattern match and builds a UTC
// midnight date. yearPrefix is prepended to the year digits.
func (t Template) Parse(match, yearPrefix string) (time.Time, bool) {
	if len(match) != len(t.format) {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(t.day.slice(match))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(t.month.slice(match))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearPrefix + t.year.slice(match))
	if err != nil || year < 1 {
		return time.Time{}, false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises overflow such as 31/02; reject it instead.
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
