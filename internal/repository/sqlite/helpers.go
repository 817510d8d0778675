package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"livraria/internal/repository"
)

// ============================================================================
// Argument Helpers
// ============================================================================

// nullable dereferences an optional field for binding; nil binds NULL
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// required binds an empty string as NULL so NOT NULL columns reject it
func required(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// surrogateID binds NULL for a zero ID so SQLite assigns the next rowid
func surrogateID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

// ============================================================================
// Query Helpers
// ============================================================================

// getOne scans a single row into dest, mapping sql.ErrNoRows to
// repository.ErrNotFound
func getOne(ctx context.Context, q sqlx.QueryerContext, what string, dest any, query string, args ...any) error {
	err := sqlx.GetContext(ctx, q, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, repository.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", what, err)
	}
	return nil
}

// selectAll scans every row into dest
func selectAll(ctx context.Context, q sqlx.QueryerContext, what string, dest any, query string, args ...any) error {
	if err := sqlx.SelectContext(ctx, q, dest, query, args...); err != nil {
		return fmt.Errorf("failed to query %s: %w", what, err)
	}
	return nil
}

// insert runs an INSERT and returns the rowid of the new row
func insert(ctx context.Context, e sqlx.ExecerContext, what string, query string, args ...any) (int64, error) {
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", what, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s id: %w", what, err)
	}
	return id, nil
}

// deleteOne runs a keyed DELETE, returning repository.ErrNotFound when no
// row matched
func deleteOne(ctx context.Context, e sqlx.ExecerContext, what string, query string, args ...any) error {
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, repository.ErrNotFound)
	}
	return nil
}

// ============================================================================
// Column Lists
// ============================================================================
//
// Column order is irrelevant for scanning (sqlx maps by name) but every
// column of the table must be listed so domain structs are fully populated.

const (
	publisherColumns = `id, name, tax_id, contact`
	categoryColumns  = `id, name, description`
	bookColumns      = `isbn, title, publication_year, price, edition, stock_quantity, publisher_id, category_id`
	authorColumns    = `id, name, nationality`
	employeeColumns  = `id, name, role`
	clientColumns    = `id, name, national_id, email, phone`
	saleColumns      = `id, date, total_amount, payment_method, client_id, employee_id`
	itemSaleColumns  = `sale_id, isbn, quantity, unit_price`
)

// qualified prefixes each column with a table alias, for joins
func qualified(alias, columns string) string {
	cols := strings.Split(columns, ",")
	for i, c := range cols {
		cols[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(cols, ", ")
}
