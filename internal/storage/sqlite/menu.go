package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/tiffins/internal/models"
)

// CreateMenuItem inserts a new catalog item and populates its ID.
func (s *SQLiteStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO menu_items (name, description, price_cents, is_active, created_at) VALUES (?, ?, ?, ?, ?)",
		item.Name, item.Description, item.PriceCents, item.IsActive, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get menu item id: %w", err)
	}
	item.ID = id

	return nil
}

// ListActiveMenuItems returns active items ordered by insertion id ascending.
func (s *SQLiteStore) ListActiveMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, price_cents, is_active, created_at FROM menu_items WHERE is_active = 1 ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.PriceCents, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	return items, nil
}

// GetMenuItemsByIDs resolves the given ids against the catalog.
// Returns a map of id to item; ids that don't exist are omitted.
func (s *SQLiteStore) GetMenuItemsByIDs(ctx context.Context, ids []int64) (map[int64]models.MenuItem, error) {
	items := make(map[int64]models.MenuItem)
	if len(ids) == 0 {
		return items, nil
	}

	// Build the IN clause with placeholders
	query := `
		SELECT id, name, description, price_cents, is_active, created_at
		FROM menu_items
		WHERE id IN (?` + repeatPlaceholder(len(ids)-1) + `)`

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.PriceCents, &item.IsActive, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// repeatPlaceholder returns a string of ", ?" repeated n times.
// Used for building IN clauses with multiple placeholders.
func repeatPlaceholder(n int) string {
	if n <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < n; i++ {
		result += ", ?"
	}
	return result
}
