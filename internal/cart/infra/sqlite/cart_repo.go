package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dwikikusuma/minicommerce/internal/cart/app"
	"github.com/dwikikusuma/minicommerce/internal/cart/domain"
	"github.com/dwikikusuma/minicommerce/pkg/money"
)

const schema = `
CREATE TABLE IF NOT EXISTS carts (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL UNIQUE,
	total_price    TEXT NOT NULL DEFAULT '0.00',
	total_quantity INTEGER NOT NULL DEFAULT 0,
	created_at     INTEGER NOT NULL,
	updated_at     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS cart_items (
	cart_id    TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
	product_id TEXT NOT NULL,
	price      TEXT NOT NULL,
	quantity   INTEGER NOT NULL,
	position   INTEGER NOT NULL,
	UNIQUE (cart_id, product_id)
);
`

type CartRepo struct {
	db *sql.DB
}

func NewCartRepo(db *sql.DB) (*CartRepo, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &CartRepo{db: db}, nil
}

func (r *CartRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var (
		cart               domain.Cart
		totalPrice         string
		createdAt, updated int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, total_price, total_quantity, created_at, updated_at
		FROM carts WHERE user_id = ?`, userID).
		Scan(&cart.ID, &cart.UserID, &totalPrice, &cart.TotalQuantity, &createdAt, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, app.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	cart.TotalPrice, err = money.Parse(totalPrice)
	if err != nil {
		return nil, err
	}
	cart.CreatedAt = time.Unix(createdAt, 0).UTC()
	cart.UpdatedAt = time.Unix(updated, 0).UTC()

	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, price, quantity
		FROM cart_items WHERE cart_id = ? ORDER BY position`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item  domain.CartItem
			price string
		)
		if err := rows.Scan(&item.ProductID, &price, &item.Quantity); err != nil {
			return nil, err
		}
		if item.Price, err = money.Parse(price); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *CartRepo) Create(ctx context.Context, cart *domain.Cart) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO carts (id, user_id, total_price, total_quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		cart.ID, cart.UserID, cart.TotalPrice.String(), cart.TotalQuantity,
		cart.CreatedAt.Unix(), cart.UpdatedAt.Unix())
	return err
}

// Save replaces the whole aggregate in one transaction so lines and
// totals can never be observed out of step.
func (r *CartRepo) Save(ctx context.Context, cart *domain.Cart) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE carts SET total_price = ?, total_quantity = ?, updated_at = ?
		WHERE id = ?`,
		cart.TotalPrice.String(), cart.TotalQuantity, cart.UpdatedAt.Unix(), cart.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return app.ErrCartNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = ?`, cart.ID); err != nil {
		return err
	}
	for i, item := range cart.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cart_items (cart_id, product_id, price, quantity, position)
			VALUES (?, ?, ?, ?, ?)`,
			cart.ID, item.ProductID, item.Price.String(), item.Quantity, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
