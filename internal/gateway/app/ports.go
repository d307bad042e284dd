package app

import "context"

// CartView is the downstream cart shape, passed through to clients
// unchanged. Amounts stay strings end to end.
type CartView struct {
	ShoppingCartID string     `json:"shoppingCartId"`
	UserID         string     `json:"userId"`
	TotalPrice     string     `json:"totalPrice"`
	TotalQuantity  int        `json:"totalQuantity"`
	Items          []CartLine `json:"items"`
}

type CartLine struct {
	ProductID string `json:"productId"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Product struct {
	ProductID string `json:"productId"`
	Price     string `json:"price"`
}

type CartClient interface {
	GetCart(ctx context.Context, userID string) (CartView, error)
	AddProduct(ctx context.Context, userID, productID, price string, quantity int) (CartView, error)
	RemoveProduct(ctx context.Context, userID, productID string) (CartView, error)
}

type CatalogClient interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
}
