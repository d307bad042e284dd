package domain

import "github.com/dwikikusuma/minicommerce/pkg/money"

// Product is what the catalog is the source of truth for: an id and
// its current price.
type Product struct {
	ProductID string
	Price     money.Amount
}
