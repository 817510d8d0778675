package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"livraria/internal/repository"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// MemoryPath opens a private in-memory store
const MemoryPath = ":memory:"

// Store is an open SQLite database with one repository per entity.
//
// A Store is constructed by Open and must be released with Close. There is
// no package-level connection.
type Store struct {
	db *sqlx.DB

	Publishers *PublisherRepo
	Categories *CategoryRepo
	Books      *BookRepo
	Authors    *AuthorRepo
	Employees  *EmployeeRepo
	Clients    *ClientRepo
	Sales      *SaleRepo
}

var (
	_ repository.PublisherRepository = (*PublisherRepo)(nil)
	_ repository.CategoryRepository  = (*CategoryRepo)(nil)
	_ repository.BookRepository      = (*BookRepo)(nil)
	_ repository.AuthorRepository    = (*AuthorRepo)(nil)
	_ repository.EmployeeRepository  = (*EmployeeRepo)(nil)
	_ repository.ClientRepository    = (*ClientRepo)(nil)
	_ repository.SaleRepository      = (*SaleRepo)(nil)
)

// Open opens (creating if needed) the SQLite store at path. It does not
// create any tables; call Bootstrap for that.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open(DriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer, and every connection to :memory: would
	// see its own empty database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewStore(db), nil
}

// NewStore wraps an already open connection. The connection must have
// foreign key enforcement enabled.
func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:         db,
		Publishers: &PublisherRepo{db: db},
		Categories: &CategoryRepo{db: db},
		Books:      &BookRepo{db: db},
		Authors:    &AuthorRepo{db: db},
		Employees:  &EmployeeRepo{db: db},
		Clients:    &ClientRepo{db: db},
		Sales:      &SaleRepo{db: db},
	}
}

// dsn appends the connection pragmas. modernc.org/sqlite strips the query
// from paths without a file: prefix before opening.
func dsn(path string) string {
	q := "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	if path != MemoryPath {
		q += "&_pragma=journal_mode(WAL)"
	}
	return path + q
}

// DB returns the underlying connection handle
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Bootstrap creates any missing tables on this store
func (s *Store) Bootstrap(ctx context.Context, opts ...BootstrapOption) error {
	return Bootstrap(ctx, s.db, opts...)
}

// Tables lists the user tables present in this store
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	return Tables(ctx, s.db)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
