// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tiffins/internal/models"
)

// ErrDuplicateEmail is returned by CreateUser when the email is already
// registered. The unique index is the source of truth; callers must not
// rely on a prior lookup alone.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for storefront persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user. Fails with ErrDuplicateEmail when
	// the (normalized) email is taken; it never overwrites.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by normalized email.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by id.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateMenuItem persists a new catalog item and populates its ID.
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error

	// ListActiveMenuItems returns active items ordered by id ascending.
	ListActiveMenuItems(ctx context.Context) ([]models.MenuItem, error)

	// GetMenuItemsByIDs resolves the given ids against the catalog,
	// active or not. Missing ids are simply absent from the result map.
	GetMenuItemsByIDs(ctx context.Context, ids []int64) (map[int64]models.MenuItem, error)

	// CreateOrder persists the order header and all of its lines in a
	// single transaction, populating the order and line IDs. A failure
	// anywhere leaves no rows behind.
	CreateOrder(ctx context.Context, order *models.Order) error

	// GetOrder retrieves an order with its lines, each joined with its
	// menu item. Returns ErrNotFound when the order does not exist.
	GetOrder(ctx context.Context, orderID int64) (*models.Order, error)

	// UpdateOrderStatus sets the order's status and returns the updated
	// header (without lines). Returns ErrNotFound when no row matched.
	UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error)

	// Close releases any resources held by the store.
	Close() error
}
