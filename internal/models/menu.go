package models

import "fmt"

// MenuItem is a sellable catalog entry.
//
// Prices are stored in integer cents only; the display string is always
// derived from the cents so the two can never drift apart.
type MenuItem struct {
	// ID is the auto-incremented row id. Insertion order doubles as the
	// public listing order.
	ID int64

	// Name of the dish.
	Name string

	// Description is optional; nil means none was provided.
	Description *string

	// PriceCents is the price in minor currency units. Always > 0.
	PriceCents int64

	// IsActive controls whether the item appears in the public listing.
	// Inactive items remain referencable by historical order lines.
	IsActive bool

	// CreatedAt is the Unix timestamp when the item was added.
	CreatedAt int64
}

// Price returns the display price derived from PriceCents, formatted with
// exactly two decimals (e.g. 1250 -> "12.50").
func (m *MenuItem) Price() string {
	return fmt.Sprintf("%d.%02d", m.PriceCents/100, m.PriceCents%100)
}
