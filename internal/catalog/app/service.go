package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/dwikikusuma/minicommerce/internal/catalog/domain"
	"github.com/dwikikusuma/minicommerce/pkg/apperr"
	"github.com/dwikikusuma/minicommerce/pkg/money"
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domain.Product{}, apperr.New(apperr.InvalidArgument, "productId is required")
	}

	p, err := s.repo.Get(ctx, productID)
	if errors.Is(err, ErrProductNotFound) {
		return domain.Product{}, apperr.Newf(apperr.NotFound, "Product with id %s not found", productID)
	}
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Seed fills an empty catalog with n products with ids "1".."n" and
// random two-decimal prices. A non-empty catalog is left untouched.
func (s *Service) Seed(ctx context.Context, n int) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i := 1; i <= n; i++ {
		price := money.MustParse(fmt.Sprintf("%d.%02d", rand.Intn(1000), rand.Intn(100)))
		p := domain.Product{
			ProductID: fmt.Sprintf("%d", i),
			Price:     price,
		}
		if err := s.repo.Insert(ctx, p); err != nil {
			return i - 1, err
		}
	}
	return n, nil
}
