// Package memory holds carts in process memory. Used in tests and as a
// storage backend for single-instance deployments (STORAGE=memory).
package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/minicommerce/internal/cart/app"
	"github.com/dwikikusuma/minicommerce/internal/cart/domain"
	"github.com/dwikikusuma/minicommerce/pkg/apperr"
)

type CartRepo struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *CartRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, app.ErrCartNotFound
	}
	return cart.Clone(), nil
}

func (r *CartRepo) Create(ctx context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.UserID]; ok {
		return apperr.Newf(apperr.Internal, "cart already exists for user %s", cart.UserID)
	}
	r.carts[cart.UserID] = cart.Clone()
	return nil
}

func (r *CartRepo) Save(ctx context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.UserID]; !ok {
		return app.ErrCartNotFound
	}
	r.carts[cart.UserID] = cart.Clone()
	return nil
}
