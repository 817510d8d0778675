package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"livraria/internal/schema"
)

type bootstrapOptions struct {
	log  logrus.FieldLogger
	echo bool
}

// BootstrapOption configures Bootstrap
type BootstrapOption func(*bootstrapOptions)

// WithLogger sets the logger used to report created tables
func WithLogger(log logrus.FieldLogger) BootstrapOption {
	return func(o *bootstrapOptions) {
		o.log = log
	}
}

// WithEcho logs every DDL statement at debug level before it runs
func WithEcho(echo bool) BootstrapOption {
	return func(o *bootstrapOptions) {
		o.echo = echo
	}
}

// Bootstrap ensures every table and index declared in the schema package
// exists, creating whatever is missing. Existing tables are never dropped or
// altered, so it is safe to run any number of times.
//
// All statements run in one transaction: either everything missing is
// created or nothing is.
func Bootstrap(ctx context.Context, db *sqlx.DB, opts ...BootstrapOption) error {
	o := bootstrapOptions{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	before, err := Tables(ctx, db)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema.Statements() {
		if o.echo {
			o.log.Debug(stmt)
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	existing := make(map[string]bool, len(before))
	for _, name := range before {
		existing[name] = true
	}
	for _, name := range schema.TableNames() {
		if !existing[name] {
			o.log.WithField("table", name).Info("created table")
		}
	}

	return nil
}

// Tables lists the user tables present in the database, sorted by name.
// SQLite's internal tables are excluded.
func Tables(ctx context.Context, db sqlx.QueryerContext) ([]string, error) {
	var names []string
	err := sqlx.SelectContext(ctx, db, &names, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return names, nil
}
