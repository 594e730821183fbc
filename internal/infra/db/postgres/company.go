package postgres

import (
	"context"
	"fmt"

	"github.com/tarhget/quotes-backend/internal/domain/company"
)

type CompanyRepo struct {
	db *DB
}

func NewCompanyRepo(db *DB) *CompanyRepo { return &CompanyRepo{db: db} }

func (r *CompanyRepo) Get(ctx context.Context) (company.Config, error) {
	var cfg company.Config
	err := r.db.Pool.QueryRow(ctx,
		`SELECT name, logo_url, tax_id, address, contact, default_terms FROM company_config WHERE id = 1`).
		Scan(&cfg.Name, &cfg.LogoURL, &cfg.TaxID, &cfg.Address, &cfg.Contact, &cfg.DefaultTerms)
	if err != nil {
		return company.Config{}, fmt.Errorf("get company config: %w", err)
	}
	return cfg, nil
}

func (r *CompanyRepo) Update(ctx context.Context, cfg company.Config) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO company_config (id, name, logo_url, tax_id, address, contact, default_terms)
		 VALUES (1, $1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, logo_url = EXCLUDED.logo_url, tax_id = EXCLUDED.tax_id,
			address = EXCLUDED.address, contact = EXCLUDED.contact, default_terms = EXCLUDED.default_terms`,
		cfg.Name, cfg.LogoURL, cfg.TaxID, cfg.Address, cfg.Contact, cfg.DefaultTerms)
	if err != nil {
		return fmt.Errorf("update company config: %w", err)
	}
	return nil
}
