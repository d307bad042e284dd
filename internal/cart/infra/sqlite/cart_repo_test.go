package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dwikikusuma/minicommerce/internal/cart/app"
	"github.com/dwikikusuma/minicommerce/internal/cart/domain"
	"github.com/dwikikusuma/minicommerce/pkg/money"
	"github.com/dwikikusuma/minicommerce/pkg/sqlitedb"
)

func newTestRepo(t *testing.T) *CartRepo {
	t.Helper()

	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "cart.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewCartRepo(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestGetByUserMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByUser(context.Background(), "nobody")
	if !errors.Is(err, app.ErrCartNotFound) {
		t.Fatalf("got %v, want ErrCartNotFound", err)
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	cart := domain.NewCart("user-1")
	if err := cart.AddItem("P1", money.MustParse("19.99"), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.AddItem("P2", money.MustParse("0.50"), 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := repo.Create(ctx, cart); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != cart.ID || got.UserID != "user-1" {
		t.Fatalf("identity mismatch: %+v", got)
	}
	if got.TotalPrice.String() != "40.48" || got.TotalQuantity != 3 {
		t.Fatalf("totals: %s / %d", got.TotalPrice, got.TotalQuantity)
	}
	if len(got.Items) != 2 || got.Items[0].ProductID != "P1" || got.Items[1].ProductID != "P2" {
		t.Fatalf("items out of order: %+v", got.Items)
	}
	if got.Items[0].Price.String() != "19.99" {
		t.Fatalf("price: %s", got.Items[0].Price)
	}
}

func TestSaveReplacesLines(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	cart := domain.NewCart("user-1")
	if err := cart.AddItem("P1", money.MustParse("10.00"), 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Create(ctx, cart); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := cart.RemoveItem("P1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := repo.Save(ctx, cart); err != nil {
		t.Fatalf("save after remove: %v", err)
	}

	got, err := repo.GetByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 1 {
		t.Fatalf("items: %+v", got.Items)
	}
	if got.TotalPrice.String() != "10.00" {
		t.Fatalf("total: %s", got.TotalPrice)
	}
}

func TestSaveUnknownCart(t *testing.T) {
	repo := newTestRepo(t)

	cart := domain.NewCart("user-1")
	err := repo.Save(context.Background(), cart)
	if !errors.Is(err, app.ErrCartNotFound) {
		t.Fatalf("got %v, want ErrCartNotFound", err)
	}
}

func TestServiceOverSQLite(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(newTestRepo(t))

	if _, err := svc.AddItem(ctx, "user-1", "P1", money.MustParse("267.00"), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.AddItem(ctx, "user-1", "P1", money.MustParse("267.00"), 1)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if cart.TotalPrice.String() != "534.00" || cart.TotalQuantity != 2 {
		t.Fatalf("totals: %s / %d", cart.TotalPrice, cart.TotalQuantity)
	}

	if _, err := svc.RemoveItem(ctx, "user-1", "P1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	cart, err = svc.RemoveItem(ctx, "user-1", "P1")
	if err != nil {
		t.Fatalf("remove again: %v", err)
	}
	if len(cart.Items) != 0 || cart.TotalPrice.String() != "0.00" {
		t.Fatalf("cart not empty: %+v", cart)
	}
}
