package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/minicommerce/pkg/apperr"
	"github.com/dwikikusuma/minicommerce/pkg/money"
)

const (
	MinQuantity = 1
	MaxQuantity = 100
)

// CartItem is one line of a cart. Price is the catalog price captured
// when the line was first added; later catalog changes never touch it.
type CartItem struct {
	ProductID string
	Price     money.Amount
	Quantity  int
}

// Cart is the aggregate for one user. Items keep insertion order and
// hold at most one line per product. TotalPrice and TotalQuantity are
// derived and recomputed after every mutation, never patched.
type Cart struct {
	ID            string
	UserID        string
	Items         []CartItem
	TotalPrice    money.Amount
	TotalQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewCart(userID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem merges quantity into an existing line for the same product,
// keeping that line's original price snapshot, or appends a new line.
func (c *Cart) AddItem(productID string, price money.Amount, quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return apperr.Newf(apperr.InvalidArgument,
			"quantity must be between %d and %d", MinQuantity, MaxQuantity)
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			c.recompute()
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Price:     price,
		Quantity:  quantity,
	})
	c.recompute()
	return nil
}

// RemoveItem decrements the line by one, dropping it entirely when the
// quantity reaches zero.
func (c *Cart) RemoveItem(productID string) error {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if c.Items[i].Quantity > 1 {
			c.Items[i].Quantity--
		} else {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		c.recompute()
		return nil
	}
	return apperr.New(apperr.NotFound, "Product not found in cart")
}

// recompute re-derives both totals from the full item set. Deriving
// from scratch keeps totals immune to drift from partial updates.
func (c *Cart) recompute() {
	total := money.Zero()
	quantity := 0
	for _, it := range c.Items {
		total = total.Add(it.Price.MulInt(it.Quantity))
		quantity += it.Quantity
	}
	c.TotalPrice = total
	c.TotalQuantity = quantity
	c.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy so stored aggregates never alias caller state.
func (c *Cart) Clone() *Cart {
	cp := *c
	cp.Items = make([]CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}
