package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dwikikusuma/minicommerce/internal/catalog/app"
	"github.com/dwikikusuma/minicommerce/internal/catalog/domain"
	"github.com/dwikikusuma/minicommerce/pkg/money"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	product_id TEXT PRIMARY KEY,
	price      TEXT NOT NULL
);
`

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) (*ProductRepo, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &ProductRepo{db: db}, nil
}

func (r *ProductRepo) Get(ctx context.Context, productID string) (domain.Product, error) {
	var price string
	err := r.db.QueryRowContext(ctx,
		`SELECT price FROM products WHERE product_id = ?`, productID).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, app.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}

	amount, err := money.Parse(price)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Product{ProductID: productID, Price: amount}, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, price FROM products ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var id, price string
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		amount, err := money.Parse(price)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Product{ProductID: id, Price: amount})
	}
	return out, rows.Err()
}

func (r *ProductRepo) Insert(ctx context.Context, p domain.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (product_id, price) VALUES (?, ?)`,
		p.ProductID, p.Price.String())
	return err
}

func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}
