package app

import (
	"context"
	"testing"

	"github.com/dwikikusuma/minicommerce/pkg/apperr"
)

type fakeCatalog struct {
	products map[string]Product
	err      error
}

func (f *fakeCatalog) GetProduct(ctx context.Context, productID string) (Product, error) {
	if f.err != nil {
		return Product{}, f.err
	}
	p, ok := f.products[productID]
	if !ok {
		return Product{}, apperr.Newf(apperr.NotFound, "Product with id %s not found", productID)
	}
	return p, nil
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeCart struct {
	addCalls int
	lastAdd  struct {
		userID, productID, price string
		quantity                 int
	}
	err error
}

func (f *fakeCart) GetCart(ctx context.Context, userID string) (CartView, error) {
	if f.err != nil {
		return CartView{}, f.err
	}
	return CartView{UserID: userID, TotalPrice: "0.00", Items: []CartLine{}}, nil
}

func (f *fakeCart) AddProduct(ctx context.Context, userID, productID, price string, quantity int) (CartView, error) {
	f.addCalls++
	f.lastAdd.userID = userID
	f.lastAdd.productID = productID
	f.lastAdd.price = price
	f.lastAdd.quantity = quantity
	if f.err != nil {
		return CartView{}, f.err
	}
	return CartView{UserID: userID}, nil
}

func (f *fakeCart) RemoveProduct(ctx context.Context, userID, productID string) (CartView, error) {
	if f.err != nil {
		return CartView{}, f.err
	}
	return CartView{UserID: userID}, nil
}

func TestAddToCartHydratesPrice(t *testing.T) {
	cart := &fakeCart{}
	catalog := &fakeCatalog{products: map[string]Product{
		"P1": {ProductID: "P1", Price: "267.00"},
	}}
	svc := NewService(cart, catalog)

	if _, err := svc.AddToCart(context.Background(), "user-1", "P1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	if cart.addCalls != 1 {
		t.Fatalf("addCalls = %d", cart.addCalls)
	}
	if cart.lastAdd.price != "267.00" || cart.lastAdd.quantity != 2 || cart.lastAdd.userID != "user-1" {
		t.Fatalf("cart received %+v", cart.lastAdd)
	}
}

func TestAddToCartUnknownProductNeverTouchesCart(t *testing.T) {
	cart := &fakeCart{}
	catalog := &fakeCatalog{products: map[string]Product{}}
	svc := NewService(cart, catalog)

	_, err := svc.AddToCart(context.Background(), "user-1", "ghost", 1)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("kind: %s", apperr.KindOf(err))
	}
	if cart.addCalls != 0 {
		t.Fatal("cart service must not be called when the product is unknown")
	}
}

func TestAddToCartCatalogDownNeverTouchesCart(t *testing.T) {
	cart := &fakeCart{}
	catalog := &fakeCatalog{err: apperr.New(apperr.Unavailable, "products service is unavailable")}
	svc := NewService(cart, catalog)

	_, err := svc.AddToCart(context.Background(), "user-1", "P1", 1)
	if apperr.KindOf(err) != apperr.Unavailable {
		t.Fatalf("kind: %s", apperr.KindOf(err))
	}
	if cart.addCalls != 0 {
		t.Fatal("cart service must not be called when the catalog is down")
	}
}

func TestAddToCartValidatesBeforeCatalog(t *testing.T) {
	cart := &fakeCart{}
	catalog := &fakeCatalog{err: apperr.New(apperr.Unavailable, "down")}
	svc := NewService(cart, catalog)

	for _, quantity := range []int{0, -5, 101} {
		_, err := svc.AddToCart(context.Background(), "user-1", "P1", quantity)
		if apperr.KindOf(err) != apperr.InvalidArgument {
			t.Fatalf("quantity %d: kind %s", quantity, apperr.KindOf(err))
		}
	}
	if _, err := svc.AddToCart(context.Background(), "user-1", "  ", 1); apperr.KindOf(err) != apperr.InvalidArgument {
		t.Fatalf("blank productId: %v", err)
	}
	if cart.addCalls != 0 {
		t.Fatal("invalid input must not reach downstream")
	}
}

func TestDownstreamErrorsPassThrough(t *testing.T) {
	want := apperr.New(apperr.NotFound, "Cart not found")
	cart := &fakeCart{err: want}
	svc := NewService(cart, &fakeCatalog{})

	_, err := svc.RemoveFromCart(context.Background(), "user-1", "P1")
	if apperr.MessageOf(err) != "Cart not found" || apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("got %v", err)
	}

	_, err = svc.ViewCart(context.Background(), "user-1")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("got %v", err)
	}
}
