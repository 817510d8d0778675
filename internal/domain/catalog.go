package domain

// Publisher issues books. TaxID is unique across publishers.
type Publisher struct {
	ID      int64   `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	TaxID   string  `db:"tax_id" json:"tax_id"`
	Contact *string `db:"contact" json:"contact,omitempty"`
}

// NewPublisher creates a publisher with the required fields set
func NewPublisher(name, taxID string) *Publisher {
	return &Publisher{Name: name, TaxID: taxID}
}

// Category groups books by subject
type Category struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

// NewCategory creates a category with the required fields set
func NewCategory(name string) *Category {
	return &Category{Name: name}
}

// Book is a title in the catalog, identified by ISBN
type Book struct {
	ISBN            string   `db:"isbn" json:"isbn"`
	Title           string   `db:"title" json:"title"`
	PublicationYear *int     `db:"publication_year" json:"publication_year,omitempty"`
	Price           *float64 `db:"price" json:"price,omitempty"`
	Edition         *string  `db:"edition" json:"edition,omitempty"`
	StockQuantity   *int     `db:"stock_quantity" json:"stock_quantity,omitempty"`
	PublisherID     *int64   `db:"publisher_id" json:"publisher_id,omitempty"`
	CategoryID      *int64   `db:"category_id" json:"category_id,omitempty"`
}

// NewBook creates a book with the required fields set
func NewBook(isbn, title string) *Book {
	return &Book{ISBN: isbn, Title: title}
}

// WithPublisher sets the publisher reference and returns the book
func (b *Book) WithPublisher(id int64) *Book {
	b.PublisherID = &id
	return b
}

// WithCategory sets the category reference and returns the book
func (b *Book) WithCategory(id int64) *Book {
	b.CategoryID = &id
	return b
}

// Author writes books
type Author struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Nationality *string `db:"nationality" json:"nationality,omitempty"`
}

// NewAuthor creates an author with the required fields set
func NewAuthor(name string) *Author {
	return &Author{Name: name}
}

// BookAuthor records that an author wrote a book. It has no identity of its
// own; the pair (ISBN, AuthorID) is its key.
type BookAuthor struct {
	ISBN     string `db:"isbn" json:"isbn"`
	AuthorID int64  `db:"author_id" json:"author_id"`
}

// Ptr returns a pointer to v, for filling optional fields
func Ptr[T any](v T) *T {
	return &v
}
