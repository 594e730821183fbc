package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	email    TEXT NOT NULL DEFAULT '',
	phone    TEXT NOT NULL DEFAULT '',
	address  TEXT NOT NULL DEFAULT '',
	document TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	description TEXT NOT NULL,
	type        TEXT NOT NULL,
	unit_price  NUMERIC NOT NULL DEFAULT 0,
	unit        TEXT NOT NULL DEFAULT 'un'
);

-- client_id has no foreign key on purpose: deleting a client is a hard
-- removal and existing quotes keep the dangling reference, surfaced at
-- render time.
CREATE TABLE IF NOT EXISTS quotes (
	id            TEXT PRIMARY KEY,
	number        TEXT NOT NULL,
	client_id     TEXT NOT NULL,
	issue_date    DATE NOT NULL,
	validity_date DATE NOT NULL,
	status        TEXT NOT NULL DEFAULT 'DRAFT',
	discount      NUMERIC NOT NULL DEFAULT 0,
	tax_percent   NUMERIC NOT NULL DEFAULT 0,
	notes         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS quote_items (
	id          TEXT PRIMARY KEY,
	quote_id    TEXT NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
	product_id  TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	quantity    NUMERIC NOT NULL DEFAULT 0,
	unit_price  NUMERIC NOT NULL DEFAULT 0,
	position    INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS company_config (
	id            INT PRIMARY KEY CHECK (id = 1),
	name          TEXT NOT NULL DEFAULT '',
	logo_url      TEXT NOT NULL DEFAULT '',
	tax_id        TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL DEFAULT '',
	contact       TEXT NOT NULL DEFAULT '',
	default_terms TEXT NOT NULL DEFAULT ''
);
`

// EnsureSchema creates the tables on startup and seeds the singleton
// company profile row so rendering always has one to work with.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO company_config (id, name, address, contact, tax_id, default_terms)
		VALUES (1, 'TARHGET', 'Av. Principal, 100, Centro',
			'contato@tarhget.com | (11) 98765-4321', '55.666.777/0001-88',
			'O pagamento deve ser efetuado em até 30 dias. Todos os serviços são propriedade da TARHGET até o pagamento integral.')
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("seed company config: %w", err)
	}
	return nil
}
