package lineitem

import (
	"strings"

	"fjacquet/trade-invoice-csv/internal/logging"
	"fjacquet/trade-invoice-csv/internal/models"
	"fjacquet/trade-invoice-csv/internal/vendor"
)

// Matcher finds item lines for one vendor profile.
type Matcher struct {
	profile vendor.Profile
	logger  logging.Logger
}

// NewMatcher creates a Matcher. A nil logger falls back to an info-level
// logrus logger.
func NewMatcher(profile vendor.Profile, logger logging.Logger) *Matcher {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Matcher{
		profile: profile,
		logger:  logger.WithField(logging.FieldVendor, profile.ID()),
	}
}

// MatchLine extracts at most one Item from line. Lines that do not match the
// item regex, fail offset validation or carry a cost without a decimal point
// yield ok=false and no error.
func (m *Matcher) MatchLine(line string) (item models.Item, ok bool, err error) {
	matched, err := m.profile.IsItemLine(line)
	if err != nil {
		m.logger.WithError(err).Warn("Item regex evaluation failed, skipping line",
			logging.Field{Key: logging.FieldLine, Value: line})
		return models.Item{}, false, nil
	}
	if !matched {
		return models.Item{}, false, nil
	}

	tokens := strings.Fields(line)
	offsetStart := len(tokens) - 1
	offsets := m.profile.Offsets()

	if !ValidOffsets(offsetStart, offsets.Name, offsets.Units, offsets.UnitCost) {
		m.logger.Debug("Skipping item line",
			logging.Field{Key: logging.FieldLine, Value: line},
			logging.Field{Key: logging.FieldReason, Value: "not enough trailing columns"})
		return models.Item{}, false, nil
	}

	item, ok, err = ExtractItem(tokens, offsetStart, offsets, m.profile.Name())
	if err != nil {
		return models.Item{}, false, err
	}
	if !ok {
		m.logger.Debug("Skipping item line",
			logging.Field{Key: logging.FieldLine, Value: line},
			logging.Field{Key: logging.FieldReason, Value: "unit cost has no decimal point"})
	}
	return item, ok, nil
}

// Items runs MatchLine over lines and keeps the produced items in order of
// appearance. The first ParseError aborts the scan.
func (m *Matcher) Items(lines []string) ([]models.Item, error) {
	items := []models.Item{}
	for _, line := range lines {
		item, ok, err := m.MatchLine(line)
		if err != nil {
			return nil, err
		}
		if ok {
			items = append(items, item)
		}
	}
	return items, nil
}
