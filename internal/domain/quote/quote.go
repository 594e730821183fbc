package quote

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("quote not found")

type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusSent     Status = "SENT"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Valid reports whether s is one of the known statuses. There is no
// transition graph: any valid status may be set at any time.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Item is one line of a quote. ProductID is empty for fully custom lines;
// when set, the description and unit price were copied from the catalog at
// selection time and are independently editable afterwards.
type Item struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (it Item) LineTotal() decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice)
}

type Quote struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	ClientID     string          `json:"client_id"`
	IssueDate    time.Time       `json:"issue_date"`
	ValidityDate time.Time       `json:"validity_date"`
	Status       Status          `json:"status"`
	Discount     decimal.Decimal `json:"discount"`    // flat currency amount
	TaxPercent   decimal.Decimal `json:"tax_percent"` // share of the final total that is tax
	Notes        string          `json:"notes"`
	Items        []Item          `json:"items"`
}

type Repository interface {
	List(ctx context.Context) ([]Quote, error)
	Get(ctx context.Context, id string) (*Quote, error)
	Create(ctx context.Context, q Quote) error
	Update(ctx context.Context, q Quote) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}
