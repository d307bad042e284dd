package app

import (
	"context"

	"github.com/dwikikusuma/minicommerce/internal/catalog/domain"
	"github.com/dwikikusuma/minicommerce/pkg/apperr"
)

// ErrProductNotFound is what repositories return for an unknown id.
// Callers usually wrap it with the id they asked for.
var ErrProductNotFound = apperr.New(apperr.NotFound, "product not found")

type ProductRepo interface {
	Get(ctx context.Context, productID string) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) error
	Count(ctx context.Context) (int, error)
}
