package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mmynk/tiffins/internal/middleware"
	"github.com/mmynk/tiffins/internal/models"
	"github.com/mmynk/tiffins/internal/service"
)

type createOrderRequest struct {
	Items []cartItemRequest `json:"items"`
}

type cartItemRequest struct {
	MenuItemID looseNumber  `json:"menuItemId"`
	Qty        *looseNumber `json:"qty"`
	Quantity   *looseNumber `json:"quantity"`
}

// toCartEntry converts the raw request line to the service command.
// Unparseable ids stay in the cart (Valid=false) so they fail the whole
// order downstream instead of being silently dropped.
func (c *cartItemRequest) toCartEntry() service.CartEntry {
	entry := service.CartEntry{}
	if id, ok := c.MenuItemID.asInt64(); ok {
		entry.MenuItemID = id
		entry.Valid = true
	}

	qty := c.Qty
	if qty == nil {
		qty = c.Quantity
	}
	if qty != nil && qty.ok {
		q := int64(qty.value)
		entry.Quantity = &q
	}
	return entry
}

type orderLineView struct {
	ID         int64        `json:"id"`
	OrderID    int64        `json:"orderId"`
	MenuItemID int64        `json:"menuItemId"`
	Quantity   int64        `json:"quantity"`
	MenuItem   menuItemView `json:"menuItem"`
}

type orderView struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"userId"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"createdAt"`
	Items     []orderLineView `json:"items"`
}

// orderCreatedView is the trimmed 201 response for a freshly placed order.
type orderCreatedView struct {
	ID     int64           `json:"id"`
	Status string          `json:"status"`
	Items  []orderLineView `json:"items"`
}

// orderHeaderView is the order without its lines, returned by the status
// transition endpoint.
type orderHeaderView struct {
	ID        int64  `json:"id"`
	UserID    string `json:"userId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func newOrderLineViews(order *models.Order) []orderLineView {
	views := make([]orderLineView, 0, len(order.Lines))
	for i := range order.Lines {
		line := &order.Lines[i]
		views = append(views, orderLineView{
			ID:         line.ID,
			OrderID:    line.OrderID,
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			MenuItem:   newMenuItemView(line.MenuItem),
		})
	}
	return views
}

func formatCreatedAt(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_order")
		return
	}

	cart := make([]service.CartEntry, 0, len(req.Items))
	for i := range req.Items {
		cart = append(cart, req.Items[i].toCartEntry())
	}

	order, err := s.orderService.Create(r.Context(), userID, cart)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, orderCreatedView{
		ID:     order.ID,
		Status: string(order.Status),
		Items:  newOrderLineViews(order),
	})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_order_id")
		return
	}

	order, err := s.orderService.Get(r.Context(), orderID, middleware.GetUserID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orderView{
		ID:        order.ID,
		UserID:    order.UserID,
		Status:    string(order.Status),
		CreatedAt: formatCreatedAt(order.CreatedAt),
		Items:     newOrderLineViews(order),
	})
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleSetOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_status")
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_status")
		return
	}

	order, err := s.orderService.SetStatus(r.Context(), orderID, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orderHeaderView{
		ID:        order.ID,
		UserID:    order.UserID,
		Status:    string(order.Status),
		CreatedAt: formatCreatedAt(order.CreatedAt),
	})
}
