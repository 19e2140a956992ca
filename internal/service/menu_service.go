package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/tiffins/internal/models"
	"github.com/mmynk/tiffins/internal/storage"
)

// MenuService exposes the menu catalog.
type MenuService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(store storage.Store, logger *slog.Logger) *MenuService {
	return &MenuService{store: store, logger: logger}
}

// ListActive returns the public listing: active items only, insertion order.
func (s *MenuService) ListActive(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.ListActiveMenuItems(ctx)
}

// CreateMenuItemParams is the validated-at-the-boundary command for adding
// a catalog item. PriceValid is false when the client sent no price or a
// non-numeric one.
type CreateMenuItemParams struct {
	Name        string
	Description *string
	PriceCents  int64
	PriceValid  bool
	IsActive    bool
}

// Create adds a catalog item. Fails with "invalid_menu_item" when the name
// is empty or the price is missing, non-numeric or not positive.
func (s *MenuService) Create(ctx context.Context, params CreateMenuItemParams) (*models.MenuItem, error) {
	if params.Name == "" || !params.PriceValid || params.PriceCents <= 0 {
		return nil, validation("invalid_menu_item")
	}

	item := &models.MenuItem{
		Name:        params.Name,
		Description: params.Description,
		PriceCents:  params.PriceCents,
		IsActive:    params.IsActive,
	}
	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("menu item created", "id", item.ID, "name", item.Name, "price_cents", item.PriceCents)
	return item, nil
}
