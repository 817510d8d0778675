package schema

// Table names
const (
	TablePublisher  = "publisher"
	TableCategory   = "category"
	TableBook       = "book"
	TableAuthor     = "author"
	TableBookAuthor = "book_author"
	TableEmployee   = "employee"
	TableClient     = "client"
	TableSale       = "sale"
	TableItemSale   = "item_sale"
)

// Tables returns the complete data model in dependency order, so that every
// referenced table precedes the tables that reference it.
func Tables() []Table {
	return []Table{
		{
			Name: TablePublisher,
			Columns: []Column{
				{Name: "id", Type: Integer},
				{Name: "name", Type: Text, NotNull: true},
				{Name: "tax_id", Type: Text, NotNull: true, Unique: true},
				{Name: "contact", Type: Text},
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: TableCategory,
			Columns: []Column{
				{Name: "id", Type: Integer},
				{Name: "name", Type: Text, NotNull: true},
				{Name: "description", Type: Text},
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: TableBook,
			Columns: []Column{
				// TEXT primary keys accept NULL in SQLite unless told otherwise
				{Name: "isbn", Type: Text, NotNull: true},
				{Name: "title", Type: Text, NotNull: true},
				{Name: "publication_year", Type: Integer},
				{Name: "price", Type: Real},
				{Name: "edition", Type: Text},
				{Name: "stock_quantity", Type: Integer},
				{Name: "publisher_id", Type: Integer},
				{Name: "category_id", Type: Integer},
			},
			PrimaryKey: []string{"isbn"},
			ForeignKeys: []ForeignKey{
				{Column: "publisher_id", RefTable: TablePublisher, RefColumn: "id"},
				{Column: "category_id", RefTable: TableCategory, RefColumn: "id"},
			},
			Indexes: []Index{
				{Name: "idx_book_publisher", Columns: []string{"publisher_id"}},
				{Name: "idx_book_category", Columns: []string{"category_id"}},
			},
		},
		{
			Name: TableAuthor,
			Columns: []Column{
				{Name: "id", Type: Integer},
				{Name: "name", Type: Text, NotNull: true},
				{Name: "nationality", Type: Text},
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: TableBookAuthor,
			Columns: []Column{
				{Name: "isbn", Type: Text, NotNull: true},
				{Name: "author_id", Type: Integer, NotNull: true},
			},
			PrimaryKey: []string{"isbn", "author_id"},
			ForeignKeys: []ForeignKey{
				{Column: "isbn", RefTable: TableBook, RefColumn: "isbn", OnDelete: Cascade},
				{Column: "author_id", RefTable: TableAuthor, RefColumn: "id", OnDelete: Cascade},
			},
			Indexes: []Index{
				{Name: "idx_book_author_author", Columns: []string{"author_id"}},
			},
		},
		{
			Name: TableEmployee,
			Columns: []Column{
				{Name: "id", Type: Integer},
				{Name: "name", Type: Text, NotNull: true},
				{Name: "role", Type: Text, NotNull: true},
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: TableClient,
			Columns: []Column{
				{Name: "id", Type: Integer},
				{Name: "name", Type: Text, NotNull: true},
				{Name: "national_id", Type: Text, NotNull: true, Unique: true},
				{Name: "email", Type: Text},
				{Name: "phone", Type: Text},
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: TableSale,
			Columns: []Column{
				{Name: "id", Type: Integer},
				{Name: "date", Type: Date},
				{Name: "total_amount", Type: Real},
				{Name: "payment_method", Type: Text},
				{Name: "client_id", Type: Integer},
				{Name: "employee_id", Type: Integer},
			},
			PrimaryKey: []string{"id"},
			ForeignKeys: []ForeignKey{
				{Column: "client_id", RefTable: TableClient, RefColumn: "id"},
				{Column: "employee_id", RefTable: TableEmployee, RefColumn: "id"},
			},
			Indexes: []Index{
				{Name: "idx_sale_client", Columns: []string{"client_id"}},
				{Name: "idx_sale_employee", Columns: []string{"employee_id"}},
			},
		},
		{
			Name: TableItemSale,
			Columns: []Column{
				{Name: "sale_id", Type: Integer, NotNull: true},
				{Name: "isbn", Type: Text, NotNull: true},
				{Name: "quantity", Type: Integer, NotNull: true},
				{Name: "unit_price", Type: Real, NotNull: true},
			},
			PrimaryKey: []string{"sale_id", "isbn"},
			ForeignKeys: []ForeignKey{
				{Column: "sale_id", RefTable: TableSale, RefColumn: "id", OnDelete: Cascade},
				{Column: "isbn", RefTable: TableBook, RefColumn: "isbn", OnDelete: Restrict},
			},
			Indexes: []Index{
				{Name: "idx_item_sale_isbn", Columns: []string{"isbn"}},
			},
		},
	}
}
