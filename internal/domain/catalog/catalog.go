package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("product not found")

type Type string

const (
	TypeProduct Type = "PRODUCT"
	TypeService Type = "SERVICE"
)

func (t Type) Valid() bool {
	return t == TypeProduct || t == TypeService
}

// ProductService is a catalog entry used as a template for quote items.
// Selecting one on a quote copies its description and price into the item at
// that moment; later edits to the catalog never touch existing quotes.
type ProductService struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Type        Type            `json:"type"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Unit        string          `json:"unit"` // e.g. "un", "h", "m²"
}

type Repository interface {
	List(ctx context.Context) ([]ProductService, error)
	Get(ctx context.Context, id string) (*ProductService, error)
	Create(ctx context.Context, p ProductService) error
	Update(ctx context.Context, p ProductService) error
	Delete(ctx context.Context, id string) error
}
