package models

import "strings"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ParseOrderStatus normalizes s to upper case and reports whether it names
// a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch status := OrderStatus(strings.ToUpper(s)); status {
	case StatusPending, StatusPaid, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// Order is a placed order: a header owned by exactly one user plus its
// line items. An order never exists without at least one line; the two are
// written in a single transaction.
type Order struct {
	// ID is the auto-incremented row id.
	ID int64

	// UserID references the owning user. Ownership is enforced at read
	// time by comparing the requester's identity to this field.
	UserID string

	// Status starts at PENDING. No transition graph is enforced.
	Status OrderStatus

	// CreatedAt is the Unix timestamp when the order was placed.
	CreatedAt int64

	// Lines are the order's line items, in insertion order.
	Lines []OrderLine
}

// OrderLine references a menu item by id with a quantity of at least 1.
// It stores no price snapshot: the item is joined at read time, so later
// catalog edits show through on historical orders.
type OrderLine struct {
	ID         int64
	OrderID    int64
	MenuItemID int64

	// Quantity is always >= 1.
	Quantity int64

	// MenuItem is the joined catalog row, populated on reads.
	MenuItem *MenuItem
}
