package app

import (
	"context"

	"github.com/dwikikusuma/minicommerce/internal/cart/domain"
	"github.com/dwikikusuma/minicommerce/pkg/apperr"
)

// ErrCartNotFound is what repositories return when a user has no cart.
var ErrCartNotFound = apperr.New(apperr.NotFound, "Cart not found")

type CartRepo interface {
	// GetByUser returns the user's cart or ErrCartNotFound.
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	Create(ctx context.Context, cart *domain.Cart) error
	// Save persists the whole aggregate: lines and totals together.
	Save(ctx context.Context, cart *domain.Cart) error
}
