package client

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("client not found")

// Client is the subject of a quote. Quotes reference it by id; it is never
// embedded into a quote, so deleting a client leaves existing quotes with a
// dangling reference that surfaces at render time.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Document string `json:"document"` // CPF/CNPJ
}

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, c Client) error
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string) error
}
