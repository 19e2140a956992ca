package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/tiffins/internal/models"
	"github.com/mmynk/tiffins/internal/storage"
)

// CartEntry is one requested line of a client cart, already parsed at the
// boundary. Valid is false when the submitted menuItemId did not parse to
// an integer id; the entry still counts toward the cart so a bad id fails
// the whole order instead of being dropped.
type CartEntry struct {
	MenuItemID int64
	Valid      bool

	// Quantity is nil when the client sent none; it defaults to 1 and is
	// floored at 1, never zero or negative.
	Quantity *int64
}

// OrderService validates carts and owns the order lifecycle.
type OrderService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(store storage.Store, logger *slog.Logger) *OrderService {
	return &OrderService{store: store, logger: logger}
}

// Create validates the cart against the catalog and persists the order
// header plus all lines atomically. The checks run in a fixed sequence,
// each with its own code:
//
//  1. empty cart                          -> "no_items"
//  2. no entry with a parseable id        -> "bad_items"
//  3. no requested id resolves            -> "bad_items"
//  4. any entry without a resolved item   -> "invalid_order"
//
// Step 4 runs per line after the bulk lookup, so a cart mixing valid and
// invalid ids fails whole: no partial orders, ever.
func (s *OrderService) Create(ctx context.Context, userID string, cart []CartEntry) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, validation("no_items")
	}

	var ids []int64
	seen := make(map[int64]bool)
	for _, entry := range cart {
		if entry.Valid && !seen[entry.MenuItemID] {
			seen[entry.MenuItemID] = true
			ids = append(ids, entry.MenuItemID)
		}
	}
	if len(ids) == 0 {
		return nil, validation("bad_items")
	}

	items, err := s.store.GetMenuItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, validation("bad_items")
	}

	lines := make([]models.OrderLine, 0, len(cart))
	for _, entry := range cart {
		if !entry.Valid {
			return nil, validation("invalid_order")
		}
		item, ok := items[entry.MenuItemID]
		if !ok {
			return nil, validation("invalid_order")
		}

		qty := int64(1)
		if entry.Quantity != nil && *entry.Quantity > 1 {
			qty = *entry.Quantity
		}
		lines = append(lines, models.OrderLine{MenuItemID: item.ID, Quantity: qty})
	}

	order := &models.Order{
		UserID: userID,
		Status: models.StatusPending,
		Lines:  lines,
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order placed", "order_id", order.ID, "user_id", userID, "lines", len(lines))

	// Reload to join each line with its menu item for the response.
	return s.store.GetOrder(ctx, order.ID)
}

// Get returns the order if it exists and belongs to the requester.
// A missing order and someone else's order fail identically with
// storage.ErrNotFound so the endpoint never leaks order existence.
func (s *OrderService) Get(ctx context.Context, orderID int64, requesterID string) (*models.Order, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID {
		return nil, storage.ErrNotFound
	}
	return order, nil
}

// SetStatus moves the order to the given status, normalized to upper case.
// Any status may move to any other; no transition graph is enforced.
func (s *OrderService) SetStatus(ctx context.Context, orderID int64, status string) (*models.Order, error) {
	normalized, ok := models.ParseOrderStatus(status)
	if !ok {
		return nil, validation("invalid_status")
	}

	order, err := s.store.UpdateOrderStatus(ctx, orderID, normalized)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated", "order_id", orderID, "status", normalized)
	return order, nil
}
