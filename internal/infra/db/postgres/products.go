package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tarhget/quotes-backend/internal/domain/catalog"
)

type ProductRepo struct {
	db *DB
}

func NewProductRepo(db *DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List(ctx context.Context) ([]catalog.ProductService, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, description, type, unit_price::text, unit FROM products ORDER BY description`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []catalog.ProductService
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepo) Get(ctx context.Context, id string) (*catalog.ProductService, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT id, description, type, unit_price::text, unit FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p catalog.ProductService) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO products (id, description, type, unit_price, unit) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Description, string(p.Type), p.UnitPrice.String(), p.Unit)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepo) Update(ctx context.Context, p catalog.ProductService) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE products SET description = $2, type = $3, unit_price = $4, unit = $5 WHERE id = $1`,
		p.ID, p.Description, string(p.Type), p.UnitPrice.String(), p.Unit)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (catalog.ProductService, error) {
	var (
		p     catalog.ProductService
		typ   string
		price string
	)
	if err := row.Scan(&p.ID, &p.Description, &typ, &price, &p.Unit); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("scan product: %w", err)
	}
	p.Type = catalog.Type(typ)
	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		return p, fmt.Errorf("parse unit price: %w", err)
	}
	p.UnitPrice = unitPrice
	return p, nil
}
