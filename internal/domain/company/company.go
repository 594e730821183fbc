package company

import "context"

// Config is the single company profile backing every rendered document.
// It is process-wide configuration, not a multi-tenant entity: one row,
// fetched whole, updated whole.
type Config struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	TaxID        string `json:"tax_id"` // CNPJ
	Address      string `json:"address"`
	Contact      string `json:"contact"`
	DefaultTerms string `json:"default_terms"`
}

type Repository interface {
	Get(ctx context.Context) (Config, error)
	Update(ctx context.Context, cfg Config) error
}
