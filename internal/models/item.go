// Package models holds the domain values produced by invoice extraction.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is one purchased line of an invoice.
type Item struct {
	Name     string
	Units    int
	UnitCost decimal.Decimal
}

// NewItem creates an Item.
func NewItem(name string, units int, unitCost decimal.Decimal) Item {
	return Item{Name: name, Units: units, UnitCost: unitCost}
}

// Total is always derived from Units and UnitCost.
func (i Item) Total() decimal.Decimal {
	return decimal.NewFromInt(int64(i.Units)).Mul(i.UnitCost)
}

func (i Item) String() string {
	return fmt.Sprintf("%s, %dx, £%s, £%s",
		i.Name, i.Units, i.UnitCost.StringFixed(2), i.Total().StringFixed(2))
}
