package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dwikikusuma/minicommerce/internal/cart/domain"
	"github.com/dwikikusuma/minicommerce/pkg/apperr"
	"github.com/dwikikusuma/minicommerce/pkg/money"
)

// Service owns all cart mutations. Mutations for one user are applied
// one at a time via a per-user lock so concurrent requests can never
// produce a lost update; different users proceed in parallel.
type Service struct {
	repo  CartRepo
	locks keyedMutex
}

func NewService(repo CartRepo) *Service {
	return &Service{repo: repo}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *Service) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	return s.getOrCreate(ctx, userID)
}

func (s *Service) AddItem(ctx context.Context, userID, productID string, price money.Amount, quantity int) (*domain.Cart, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(productID) == "" {
		return nil, apperr.New(apperr.InvalidArgument, "productId is required")
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	cart, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(productID, price, quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	// Removal does not create carts lazily: no cart is an error here.
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cart.RemoveItem(productID); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) getOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.GetByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	cart = domain.NewCart(userID)
	if err := s.repo.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperr.New(apperr.InvalidArgument, "userId is required")
	}
	return nil
}

// keyedMutex hands out one mutex per key. Entries are kept for the
// process lifetime; the key space is bounded by the active user set.
type keyedMutex struct {
	mu   sync.Mutex
	keys map[string]*sync.Mutex
}

func (m *keyedMutex) lock(key string) func() {
	m.mu.Lock()
	if m.keys == nil {
		m.keys = make(map[string]*sync.Mutex)
	}
	l, ok := m.keys[key]
	if !ok {
		l = &sync.Mutex{}
		m.keys[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}
