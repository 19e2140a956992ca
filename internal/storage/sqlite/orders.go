package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mmynk/tiffins/internal/models"
	"github.com/mmynk/tiffins/internal/storage"
)

// CreateOrder persists the order header and all of its lines in a single
// transaction. A failure at any point rolls everything back: an order row
// never exists without its lines.
func (s *SQLiteStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if order.CreatedAt == 0 {
		order.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO orders (user_id, status, created_at) VALUES (?, ?, ?)",
		order.UserID, string(order.Status), order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get order id: %w", err)
	}
	order.ID = orderID

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = orderID

		res, err := tx.ExecContext(ctx,
			"INSERT INTO order_lines (order_id, menu_item_id, quantity) VALUES (?, ?, ?)",
			line.OrderID, line.MenuItemID, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
		lineID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get order line id: %w", err)
		}
		line.ID = lineID
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetOrder retrieves an order with its lines, each joined with its menu item.
func (s *SQLiteStore) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	order := &models.Order{}
	var status string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, status, created_at FROM orders WHERE id = ?",
		orderID,
	).Scan(&order.ID, &order.UserID, &status, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	order.Status = models.OrderStatus(status)

	rows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.order_id, l.menu_item_id, l.quantity,
		       m.id, m.name, m.description, m.price_cents, m.is_active, m.created_at
		FROM order_lines l
		JOIN menu_items m ON m.id = l.menu_item_id
		WHERE l.order_id = ?
		ORDER BY l.id ASC`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line models.OrderLine
		var item models.MenuItem
		if err := rows.Scan(
			&line.ID, &line.OrderID, &line.MenuItemID, &line.Quantity,
			&item.ID, &item.Name, &item.Description, &item.PriceCents, &item.IsActive, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		line.MenuItem = &item
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order lines: %w", err)
	}

	return order, nil
}

// UpdateOrderStatus sets the order's status and returns the updated header.
func (s *SQLiteStore) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE orders SET status = ? WHERE id = ?",
		string(status), orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, storage.ErrNotFound
	}

	order := &models.Order{}
	var st string
	err = s.db.QueryRowContext(ctx,
		"SELECT id, user_id, status, created_at FROM orders WHERE id = ?",
		orderID,
	).Scan(&order.ID, &order.UserID, &st, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}
	order.Status = models.OrderStatus(st)

	return order, nil
}
