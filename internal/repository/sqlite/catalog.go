package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"livraria/internal/domain"
)

// ============================================================================
// Publisher
// ============================================================================

// PublisherRepo implements repository.PublisherRepository
type PublisherRepo struct {
	db *sqlx.DB
}

// Create inserts a publisher. A zero ID is assigned by the database.
func (r *PublisherRepo) Create(ctx context.Context, p *domain.Publisher) error {
	id, err := insert(ctx, r.db, "publisher", `
		INSERT INTO publisher (id, name, tax_id, contact) VALUES (?, ?, ?, ?)
	`, surrogateID(p.ID), required(p.Name), required(p.TaxID), nullable(p.Contact))
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Get retrieves a publisher by ID
func (r *PublisherRepo) Get(ctx context.Context, id int64) (*domain.Publisher, error) {
	var p domain.Publisher
	if err := getOne(ctx, r.db, "publisher", &p,
		`SELECT `+publisherColumns+` FROM publisher WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all publishers ordered by ID
func (r *PublisherRepo) List(ctx context.Context) ([]domain.Publisher, error) {
	var ps []domain.Publisher
	err := selectAll(ctx, r.db, "publishers", &ps,
		`SELECT `+publisherColumns+` FROM publisher ORDER BY id`)
	return ps, err
}

// Delete removes a publisher. It fails while any book references it.
func (r *PublisherRepo) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, r.db, "publisher", `DELETE FROM publisher WHERE id = ?`, id)
}

// Books lists the publisher's books ordered by ISBN
func (r *PublisherRepo) Books(ctx context.Context, id int64) ([]domain.Book, error) {
	var bs []domain.Book
	err := selectAll(ctx, r.db, "books", &bs,
		`SELECT `+bookColumns+` FROM book WHERE publisher_id = ? ORDER BY isbn`, id)
	return bs, err
}

// ============================================================================
// Category
// ============================================================================

// CategoryRepo implements repository.CategoryRepository
type CategoryRepo struct {
	db *sqlx.DB
}

// Create inserts a category. A zero ID is assigned by the database.
func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	id, err := insert(ctx, r.db, "category", `
		INSERT INTO category (id, name, description) VALUES (?, ?, ?)
	`, surrogateID(c.ID), required(c.Name), nullable(c.Description))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// Get retrieves a category by ID
func (r *CategoryRepo) Get(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	if err := getOne(ctx, r.db, "category", &c,
		`SELECT `+categoryColumns+` FROM category WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories ordered by ID
func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	var cs []domain.Category
	err := selectAll(ctx, r.db, "categories", &cs,
		`SELECT `+categoryColumns+` FROM category ORDER BY id`)
	return cs, err
}

// Delete removes a category. It fails while any book references it.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, r.db, "category", `DELETE FROM category WHERE id = ?`, id)
}

// Books lists the category's books ordered by ISBN
func (r *CategoryRepo) Books(ctx context.Context, id int64) ([]domain.Book, error) {
	var bs []domain.Book
	err := selectAll(ctx, r.db, "books", &bs,
		`SELECT `+bookColumns+` FROM book WHERE category_id = ? ORDER BY isbn`, id)
	return bs, err
}

// ============================================================================
// Book
// ============================================================================

// BookRepo implements repository.BookRepository
type BookRepo struct {
	db *sqlx.DB
}

// Create inserts a book
func (r *BookRepo) Create(ctx context.Context, b *domain.Book) error {
	_, err := insert(ctx, r.db, "book", `
		INSERT INTO book (isbn, title, publication_year, price, edition, stock_quantity, publisher_id, category_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, required(b.ISBN), required(b.Title), nullable(b.PublicationYear), nullable(b.Price), nullable(b.Edition),
		nullable(b.StockQuantity), nullable(b.PublisherID), nullable(b.CategoryID))
	return err
}

// Get retrieves a book by ISBN
func (r *BookRepo) Get(ctx context.Context, isbn string) (*domain.Book, error) {
	var b domain.Book
	if err := getOne(ctx, r.db, "book", &b,
		`SELECT `+bookColumns+` FROM book WHERE isbn = ?`, isbn); err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns all books ordered by ISBN
func (r *BookRepo) List(ctx context.Context) ([]domain.Book, error) {
	var bs []domain.Book
	err := selectAll(ctx, r.db, "books", &bs,
		`SELECT `+bookColumns+` FROM book ORDER BY isbn`)
	return bs, err
}

// Delete removes a book together with its authorship links. It fails while
// any sale line references the book.
func (r *BookRepo) Delete(ctx context.Context, isbn string) error {
	return deleteOne(ctx, r.db, "book", `DELETE FROM book WHERE isbn = ?`, isbn)
}

// Publisher returns the book's publisher
func (r *BookRepo) Publisher(ctx context.Context, isbn string) (*domain.Publisher, error) {
	var p domain.Publisher
	if err := getOne(ctx, r.db, "publisher", &p, `
		SELECT `+qualified("p", publisherColumns)+`
		FROM publisher p JOIN book b ON b.publisher_id = p.id
		WHERE b.isbn = ?
	`, isbn); err != nil {
		return nil, err
	}
	return &p, nil
}

// Category returns the book's category
func (r *BookRepo) Category(ctx context.Context, isbn string) (*domain.Category, error) {
	var c domain.Category
	if err := getOne(ctx, r.db, "category", &c, `
		SELECT `+qualified("c", categoryColumns)+`
		FROM category c JOIN book b ON b.category_id = c.id
		WHERE b.isbn = ?
	`, isbn); err != nil {
		return nil, err
	}
	return &c, nil
}

// AddAuthor links an author to a book. Both must already exist.
func (r *BookRepo) AddAuthor(ctx context.Context, isbn string, authorID int64) error {
	_, err := insert(ctx, r.db, "book author", `
		INSERT INTO book_author (isbn, author_id) VALUES (?, ?)
	`, isbn, authorID)
	return err
}

// RemoveAuthor unlinks an author from a book
func (r *BookRepo) RemoveAuthor(ctx context.Context, isbn string, authorID int64) error {
	return deleteOne(ctx, r.db, "book author",
		`DELETE FROM book_author WHERE isbn = ? AND author_id = ?`, isbn, authorID)
}

// Authors lists the book's authors ordered by ID
func (r *BookRepo) Authors(ctx context.Context, isbn string) ([]domain.Author, error) {
	var as []domain.Author
	err := selectAll(ctx, r.db, "authors", &as, `
		SELECT `+qualified("a", authorColumns)+`
		FROM author a JOIN book_author ba ON ba.author_id = a.id
		WHERE ba.isbn = ?
		ORDER BY a.id
	`, isbn)
	return as, err
}

// SaleItems lists the sale lines that include the book, ordered by sale
func (r *BookRepo) SaleItems(ctx context.Context, isbn string) ([]domain.ItemSale, error) {
	var items []domain.ItemSale
	err := selectAll(ctx, r.db, "sale items", &items,
		`SELECT `+itemSaleColumns+` FROM item_sale WHERE isbn = ? ORDER BY sale_id`, isbn)
	return items, err
}

// ============================================================================
// Author
// ============================================================================

// AuthorRepo implements repository.AuthorRepository
type AuthorRepo struct {
	db *sqlx.DB
}

// Create inserts an author. A zero ID is assigned by the database.
func (r *AuthorRepo) Create(ctx context.Context, a *domain.Author) error {
	id, err := insert(ctx, r.db, "author", `
		INSERT INTO author (id, name, nationality) VALUES (?, ?, ?)
	`, surrogateID(a.ID), required(a.Name), nullable(a.Nationality))
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// Get retrieves an author by ID
func (r *AuthorRepo) Get(ctx context.Context, id int64) (*domain.Author, error) {
	var a domain.Author
	if err := getOne(ctx, r.db, "author", &a,
		`SELECT `+authorColumns+` FROM author WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all authors ordered by ID
func (r *AuthorRepo) List(ctx context.Context) ([]domain.Author, error) {
	var as []domain.Author
	err := selectAll(ctx, r.db, "authors", &as,
		`SELECT `+authorColumns+` FROM author ORDER BY id`)
	return as, err
}

// Delete removes an author together with their authorship links
func (r *AuthorRepo) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, r.db, "author", `DELETE FROM author WHERE id = ?`, id)
}

// Books lists the author's books ordered by ISBN
func (r *AuthorRepo) Books(ctx context.Context, id int64) ([]domain.Book, error) {
	var bs []domain.Book
	err := selectAll(ctx, r.db, "books", &bs, `
		SELECT `+qualified("b", bookColumns)+`
		FROM book b JOIN book_author ba ON ba.isbn = b.isbn
		WHERE ba.author_id = ?
		ORDER BY b.isbn
	`, id)
	return bs, err
}
