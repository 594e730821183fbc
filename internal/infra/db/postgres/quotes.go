package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tarhget/quotes-backend/internal/domain/quote"
)

type QuoteRepo struct {
	db *DB
}

func NewQuoteRepo(db *DB) *QuoteRepo { return &QuoteRepo{db: db} }

const quoteColumns = `id, number, client_id, issue_date, validity_date, status, discount::text, tax_percent::text, notes`

func (r *QuoteRepo) List(ctx context.Context) ([]quote.Quote, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+quoteColumns+` FROM quotes ORDER BY issue_date DESC, number DESC`)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []quote.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemsByQuote, err := r.loadAllItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		quotes[i].Items = itemsByQuote[quotes[i].ID]
	}
	return quotes, nil
}

func (r *QuoteRepo) Get(ctx context.Context, id string) (*quote.Quote, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
	q, err := scanQuote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, quote.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	q.Items = items
	return &q, nil
}

func (r *QuoteRepo) Create(ctx context.Context, q quote.Quote) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO quotes (id, number, client_id, issue_date, validity_date, status, discount, tax_percent, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			q.ID, q.Number, q.ClientID, q.IssueDate, q.ValidityDate, string(q.Status),
			q.Discount.String(), q.TaxPercent.String(), q.Notes)
		if err != nil {
			return fmt.Errorf("create quote: %w", err)
		}
		return insertItems(ctx, tx, q.ID, q.Items)
	})
}

// Update replaces the quote header and its full item list. Item order is the
// slice order, persisted through the position column.
func (r *QuoteRepo) Update(ctx context.Context, q quote.Quote) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE quotes SET client_id = $2, issue_date = $3, validity_date = $4, status = $5,
			 discount = $6, tax_percent = $7, notes = $8 WHERE id = $1`,
			q.ID, q.ClientID, q.IssueDate, q.ValidityDate, string(q.Status),
			q.Discount.String(), q.TaxPercent.String(), q.Notes)
		if err != nil {
			return fmt.Errorf("update quote: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return quote.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM quote_items WHERE quote_id = $1`, q.ID); err != nil {
			return fmt.Errorf("delete quote items: %w", err)
		}
		return insertItems(ctx, tx, q.ID, q.Items)
	})
}

func (r *QuoteRepo) UpdateStatus(ctx context.Context, id string, status quote.Status) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE quotes SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrNotFound
	}
	return nil
}

func (r *QuoteRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quote.ErrNotFound
	}
	return nil
}

func (r *QuoteRepo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertItems(ctx context.Context, tx pgx.Tx, quoteID string, items []quote.Item) error {
	for i, it := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO quote_items (id, quote_id, product_id, description, quantity, unit_price, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, quoteID, it.ProductID, it.Description,
			it.Quantity.String(), it.UnitPrice.String(), i)
		if err != nil {
			return fmt.Errorf("insert quote item: %w", err)
		}
	}
	return nil
}

func (r *QuoteRepo) loadItems(ctx context.Context, quoteID string) ([]quote.Item, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, product_id, description, quantity::text, unit_price::text
		 FROM quote_items WHERE quote_id = $1 ORDER BY position`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("load quote items: %w", err)
	}
	defer rows.Close()

	var items []quote.Item
	for rows.Next() {
		it, _, err := scanItem(rows, false)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *QuoteRepo) loadAllItems(ctx context.Context) (map[string][]quote.Item, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, product_id, description, quantity::text, unit_price::text, quote_id
		 FROM quote_items ORDER BY quote_id, position`)
	if err != nil {
		return nil, fmt.Errorf("load quote items: %w", err)
	}
	defer rows.Close()

	byQuote := make(map[string][]quote.Item)
	for rows.Next() {
		it, quoteID, err := scanItem(rows, true)
		if err != nil {
			return nil, err
		}
		byQuote[quoteID] = append(byQuote[quoteID], it)
	}
	return byQuote, rows.Err()
}

func scanItem(rows pgx.Rows, withQuoteID bool) (quote.Item, string, error) {
	var (
		it      quote.Item
		quoteID string
		qty     string
		price   string
	)
	dest := []any{&it.ID, &it.ProductID, &it.Description, &qty, &price}
	if withQuoteID {
		dest = append(dest, &quoteID)
	}
	if err := rows.Scan(dest...); err != nil {
		return it, "", fmt.Errorf("scan quote item: %w", err)
	}
	var err error
	if it.Quantity, err = decimal.NewFromString(qty); err != nil {
		return it, "", fmt.Errorf("parse quantity: %w", err)
	}
	if it.UnitPrice, err = decimal.NewFromString(price); err != nil {
		return it, "", fmt.Errorf("parse unit price: %w", err)
	}
	return it, quoteID, nil
}

func scanQuote(row pgx.Row) (quote.Quote, error) {
	var (
		q          quote.Quote
		status     string
		discount   string
		taxPercent string
	)
	err := row.Scan(&q.ID, &q.Number, &q.ClientID, &q.IssueDate, &q.ValidityDate,
		&status, &discount, &taxPercent, &q.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return q, err
		}
		return q, fmt.Errorf("scan quote: %w", err)
	}
	q.Status = quote.Status(status)
	if q.Discount, err = decimal.NewFromString(discount); err != nil {
		return q, fmt.Errorf("parse discount: %w", err)
	}
	if q.TaxPercent, err = decimal.NewFromString(taxPercent); err != nil {
		return q, fmt.Errorf("parse tax percent: %w", err)
	}
	return q, nil
}
