package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/tiffins/internal/models"
	"github.com/mmynk/tiffins/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()

	user := models.NewUser(email, "Test User", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedMenuItem(t *testing.T, store *SQLiteStore, name string, priceCents int64, active bool) *models.MenuItem {
	t.Helper()

	item := &models.MenuItem{Name: name, PriceCents: priceCents, IsActive: active}
	if err := store.CreateMenuItem(context.Background(), item); err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
	return item
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		user := seedUser(t, store, "a@x.com")

		byEmail, err := store.GetUserByEmail(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if byEmail == nil || byEmail.ID != user.ID {
			t.Errorf("expected user %s, got %+v", user.ID, byEmail)
		}

		byID, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if byID == nil || byID.Email != "a@x.com" {
			t.Errorf("expected email a@x.com, got %+v", byID)
		}
	})

	t.Run("duplicate email fails without overwriting", func(t *testing.T) {
		original, err := store.GetUserByEmail(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}

		dup := models.NewUser("a@x.com", "Impostor", "other-hash")
		if err := store.CreateUser(ctx, dup); !errors.Is(err, storage.ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}

		after, err := store.GetUserByEmail(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if after.ID != original.ID || after.Name != original.Name {
			t.Error("duplicate signup must not overwrite the existing user")
		}
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		user, err := store.GetUserByEmail(ctx, "nobody@x.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil, got %+v", user)
		}
	})
}

func TestMenuItems(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	dal := seedMenuItem(t, store, "Dal Tadka", 850, true)
	paneer := seedMenuItem(t, store, "Paneer Tikka", 1250, true)
	offMenu := seedMenuItem(t, store, "Seasonal Special", 999, false)

	t.Run("create populates id", func(t *testing.T) {
		if dal.ID == 0 || paneer.ID == 0 {
			t.Error("expected ids to be populated")
		}
		if paneer.ID <= dal.ID {
			t.Errorf("expected insertion order ids, got %d then %d", dal.ID, paneer.ID)
		}
	})

	t.Run("list returns only active items in insertion order", func(t *testing.T) {
		items, err := store.ListActiveMenuItems(ctx)
		if err != nil {
			t.Fatalf("ListActiveMenuItems failed: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 active items, got %d", len(items))
		}
		if items[0].ID != dal.ID || items[1].ID != paneer.ID {
			t.Errorf("expected [%d %d], got [%d %d]", dal.ID, paneer.ID, items[0].ID, items[1].ID)
		}
		for _, item := range items {
			if !item.IsActive {
				t.Errorf("inactive item %d in public listing", item.ID)
			}
		}
	})

	t.Run("get by ids resolves existing and skips missing", func(t *testing.T) {
		items, err := store.GetMenuItemsByIDs(ctx, []int64{dal.ID, offMenu.ID, 9999})
		if err != nil {
			t.Fatalf("GetMenuItemsByIDs failed: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if _, ok := items[dal.ID]; !ok {
			t.Error("expected dal to resolve")
		}
		// Inactive items still resolve; only the public listing filters.
		if _, ok := items[offMenu.ID]; !ok {
			t.Error("expected inactive item to resolve")
		}
	})

	t.Run("empty id set", func(t *testing.T) {
		items, err := store.GetMenuItemsByIDs(ctx, nil)
		if err != nil {
			t.Fatalf("GetMenuItemsByIDs failed: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected empty map, got %d items", len(items))
		}
	})
}

func TestOrders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := seedUser(t, store, "orders@x.com")
	dal := seedMenuItem(t, store, "Dal Tadka", 850, true)
	paneer := seedMenuItem(t, store, "Paneer Tikka", 1250, true)

	t.Run("create persists header and lines together", func(t *testing.T) {
		order := &models.Order{
			UserID: user.ID,
			Status: models.StatusPending,
			Lines: []models.OrderLine{
				{MenuItemID: dal.ID, Quantity: 2},
				{MenuItemID: paneer.ID, Quantity: 1},
			},
		}
		if err := store.CreateOrder(ctx, order); err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}
		if order.ID == 0 {
			t.Fatal("expected order ID to be populated")
		}

		got, err := store.GetOrder(ctx, order.ID)
		if err != nil {
			t.Fatalf("GetOrder failed: %v", err)
		}
		if got.Status != models.StatusPending {
			t.Errorf("expected PENDING, got %s", got.Status)
		}
		if len(got.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(got.Lines))
		}
		if got.Lines[0].MenuItem == nil || got.Lines[0].MenuItem.Name != "Dal Tadka" {
			t.Errorf("expected joined menu item, got %+v", got.Lines[0].MenuItem)
		}
		if got.Lines[0].Quantity != 2 {
			t.Errorf("expected quantity 2, got %d", got.Lines[0].Quantity)
		}
	})

	t.Run("failed line insert rolls back the header", func(t *testing.T) {
		order := &models.Order{
			UserID: user.ID,
			Lines: []models.OrderLine{
				{MenuItemID: dal.ID, Quantity: 1},
				{MenuItemID: 9999, Quantity: 1}, // violates the FK
			},
		}
		if err := store.CreateOrder(ctx, order); err == nil {
			t.Fatal("expected CreateOrder to fail")
		}

		if _, err := store.GetOrder(ctx, order.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected no order row after rollback, got %v", err)
		}
	})

	t.Run("update status", func(t *testing.T) {
		order := &models.Order{
			UserID: user.ID,
			Lines:  []models.OrderLine{{MenuItemID: dal.ID, Quantity: 1}},
		}
		if err := store.CreateOrder(ctx, order); err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}

		updated, err := store.UpdateOrderStatus(ctx, order.ID, models.StatusPaid)
		if err != nil {
			t.Fatalf("UpdateOrderStatus failed: %v", err)
		}
		if updated.Status != models.StatusPaid {
			t.Errorf("expected PAID, got %s", updated.Status)
		}
	})

	t.Run("update status of missing order", func(t *testing.T) {
		if _, err := store.UpdateOrderStatus(ctx, 9999, models.StatusPaid); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("get missing order", func(t *testing.T) {
		if _, err := store.GetOrder(ctx, 9999); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
