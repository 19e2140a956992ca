package api

import (
	"encoding/json"
	"net/http"

	"github.com/mmynk/tiffins/internal/models"
	"github.com/mmynk/tiffins/internal/service"
)

// menuItemView is the public shape of a catalog item. Price is derived
// from PriceCents on the way out; the two can never disagree.
type menuItemView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
	PriceCents  int64   `json:"priceCents"`
	Price       string  `json:"price"`
}

func newMenuItemView(item *models.MenuItem) menuItemView {
	return menuItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		IsActive:    item.IsActive,
		PriceCents:  item.PriceCents,
		Price:       item.Price(),
	}
}

func (s *Server) handleListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := s.menuService.ListActive(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	views := make([]menuItemView, 0, len(items))
	for i := range items {
		views = append(views, newMenuItemView(&items[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

type createMenuItemRequest struct {
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	PriceCents  looseNumber `json:"priceCents"`
	IsActive    *bool       `json:"isActive"`
}

func (s *Server) handleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req createMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_menu_item")
		return
	}

	params := service.CreateMenuItemParams{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		params.IsActive = *req.IsActive
	}
	if cents, ok := req.PriceCents.asInt64(); ok {
		params.PriceCents = cents
		params.PriceValid = true
	}

	item, err := s.menuService.Create(r.Context(), params)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newMenuItemView(item))
}
