package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tarhget/quotes-backend/internal/domain/client"
)

type ClientRepo struct {
	db *DB
}

func NewClientRepo(db *DB) *ClientRepo { return &ClientRepo{db: db} }

func (r *ClientRepo) List(ctx context.Context) ([]client.Client, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, name, email, phone, address, document FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Document); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientRepo) Get(ctx context.Context, id string) (*client.Client, error) {
	var c client.Client
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, name, email, phone, address, document FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Document)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, client.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepo) Create(ctx context.Context, c client.Client) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO clients (id, name, email, phone, address, document) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.Document)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientRepo) Update(ctx context.Context, c client.Client) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE clients SET name = $2, email = $3, phone = $4, address = $5, document = $6 WHERE id = $1`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.Document)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrNotFound
	}
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrNotFound
	}
	return nil
}
