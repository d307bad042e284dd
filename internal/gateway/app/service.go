package app

import (
	"context"
	"strings"

	"github.com/dwikikusuma/minicommerce/pkg/apperr"
)

// Quantity bounds mirror what the cart service enforces; checking here
// fails fast before any downstream call is made.
const (
	minQuantity = 1
	maxQuantity = 100
)

// Service composes catalog and cart calls into the client-facing cart
// operations. Prices always come from the catalog here, never from the
// client, so a cart line can only ever hold a price the catalog vouched
// for at the moment of the add.
type Service struct {
	cart    CartClient
	catalog CatalogClient
}

func NewService(cart CartClient, catalog CatalogClient) *Service {
	return &Service{cart: cart, catalog: catalog}
}

func (s *Service) ViewCart(ctx context.Context, userID string) (CartView, error) {
	return s.cart.GetCart(ctx, userID)
}

// AddToCart hydrates the catalog price first. Catalog failure of any
// kind aborts before the cart service is called: no price, no mutation.
func (s *Service) AddToCart(ctx context.Context, userID, productID string, quantity int) (CartView, error) {
	if strings.TrimSpace(productID) == "" {
		return CartView{}, apperr.New(apperr.InvalidArgument, "productId is required")
	}
	if quantity < minQuantity || quantity > maxQuantity {
		return CartView{}, apperr.Newf(apperr.InvalidArgument,
			"quantity must be between %d and %d", minQuantity, maxQuantity)
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return CartView{}, err
	}

	return s.cart.AddProduct(ctx, userID, product.ProductID, product.Price, quantity)
}

func (s *Service) RemoveFromCart(ctx context.Context, userID, productID string) (CartView, error) {
	return s.cart.RemoveProduct(ctx, userID, productID)
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.catalog.ListProducts(ctx)
}
