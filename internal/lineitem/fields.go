package lineitem

import (
	"errors"
	"strconv"
	"strings"

	"fjacquet/trade-invoice-csv/internal/models"
	"fjacquet/trade-invoice-csv/internal/parsererror"
	"fjacquet/trade-invoice-csv/internal/vendor"

	"github.com/shopspring/decimal"
)

var errNegativeUnits = errors.New("units cannot be negative")

// NormalizeUnitCost keeps the integer part and at most two fractional digits
// of a cost token. Extra digits are truncated, not rounded. ok is false when
// the token has no decimal point.
func NormalizeUnitCost(token string) (cost string, ok bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return "", false
	}
	frac := []rune(parts[1])
	if len(frac) > 2 {
		frac = frac[:2]
	}
	return parts[0] + "." + string(frac), true
}

// ExtractItem builds an Item from the tokens of a line whose offsets have
// already been validated. ok is false, with a nil error, when the cost token
// has no decimal point. A non-numeric units or cost token is a ParseError.
func ExtractItem(tokens []string, offsetStart int, offsets vendor.Offsets, vendorName string) (item models.Item, ok bool, err error) {
	name := ""
	if end := offsetStart + offsets.Name; end > 1 {
		name = strings.Join(tokens[1:end], " ")
	}

	unitsToken := tokens[offsetStart+offsets.Units]
	costToken := tokens[offsetStart+offsets.UnitCost]

	cost, ok := NormalizeUnitCost(costToken)
	if !ok {
		return models.Item{}, false, nil
	}

	units, err := strconv.Atoi(unitsToken)
	if err == nil && units < 0 {
		err = errNegativeUnits
	}
	if err != nil {
		return models.Item{}, false, &parsererror.ParseError{
			Parser: vendorName, Field: "units", Value: unitsToken, Err: err,
		}
	}

	unitCost, err := decimal.NewFromString(cost)
	if err != nil {
		return models.Item{}, false, &parsererror.ParseError{
			Parser: vendorName, Field: "unit cost", Value: costToken, Err: err,
		}
	}

	return models.NewItem(name, units, unitCost), true, nil
}
