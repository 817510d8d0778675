package repository

import (
	"context"
	"errors"

	"livraria/internal/domain"
)

// ErrNotFound is returned when a keyed lookup matches no row
var ErrNotFound = errors.New("not found")

// PublisherRepository provides access to publisher rows
type PublisherRepository interface {
	Create(ctx context.Context, p *domain.Publisher) error
	Get(ctx context.Context, id int64) (*domain.Publisher, error)
	List(ctx context.Context) ([]domain.Publisher, error)
	Delete(ctx context.Context, id int64) error

	// Books lists the books issued by the publisher
	Books(ctx context.Context, id int64) ([]domain.Book, error)
}

// CategoryRepository provides access to category rows
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Delete(ctx context.Context, id int64) error

	// Books lists the books in the category
	Books(ctx context.Context, id int64) ([]domain.Book, error)
}

// BookRepository provides access to book rows and their authorship links
type BookRepository interface {
	Create(ctx context.Context, b *domain.Book) error
	Get(ctx context.Context, isbn string) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	Delete(ctx context.Context, isbn string) error

	// Publisher returns the book's publisher, or ErrNotFound if it has none
	Publisher(ctx context.Context, isbn string) (*domain.Publisher, error)
	// Category returns the book's category, or ErrNotFound if it has none
	Category(ctx context.Context, isbn string) (*domain.Category, error)

	// Authorship (book_author)
	AddAuthor(ctx context.Context, isbn string, authorID int64) error
	RemoveAuthor(ctx context.Context, isbn string, authorID int64) error
	Authors(ctx context.Context, isbn string) ([]domain.Author, error)

	// SaleItems lists the sale lines that include the book
	SaleItems(ctx context.Context, isbn string) ([]domain.ItemSale, error)
}

// AuthorRepository provides access to author rows
type AuthorRepository interface {
	Create(ctx context.Context, a *domain.Author) error
	Get(ctx context.Context, id int64) (*domain.Author, error)
	List(ctx context.Context) ([]domain.Author, error)
	Delete(ctx context.Context, id int64) error

	// Books lists the books written by the author
	Books(ctx context.Context, id int64) ([]domain.Book, error)
}

// EmployeeRepository provides access to employee rows
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) error

	// Sales lists the sales recorded by the employee
	Sales(ctx context.Context, id int64) ([]domain.Sale, error)
}

// ClientRepository provides access to client rows
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	Get(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Delete(ctx context.Context, id int64) error

	// Sales lists the client's purchases
	Sales(ctx context.Context, id int64) ([]domain.Sale, error)
}

// SaleRepository provides access to sale rows and their line items
type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) error
	// CreateWithItems inserts the sale and all of its lines atomically
	CreateWithItems(ctx context.Context, s *domain.Sale, items []domain.ItemSale) error
	Get(ctx context.Context, id int64) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	Delete(ctx context.Context, id int64) error

	// Client returns the buyer, or ErrNotFound if none is recorded
	Client(ctx context.Context, id int64) (*domain.Client, error)
	// Employee returns the seller, or ErrNotFound if none is recorded
	Employee(ctx context.Context, id int64) (*domain.Employee, error)

	// Line items (item_sale)
	AddItem(ctx context.Context, item *domain.ItemSale) error
	Items(ctx context.Context, id int64) ([]domain.ItemSale, error)
	Books(ctx context.Context, id int64) ([]domain.Book, error)
}
