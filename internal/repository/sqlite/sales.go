package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"livraria/internal/domain"
)

// ============================================================================
// Employee
// ============================================================================

// EmployeeRepo implements repository.EmployeeRepository
type EmployeeRepo struct {
	db *sqlx.DB
}

// Create inserts an employee. A zero ID is assigned by the database.
func (r *EmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	id, err := insert(ctx, r.db, "employee", `
		INSERT INTO employee (id, name, role) VALUES (?, ?, ?)
	`, surrogateID(e.ID), required(e.Name), required(e.Role))
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

// Get retrieves an employee by ID
func (r *EmployeeRepo) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	if err := getOne(ctx, r.db, "employee", &e,
		`SELECT `+employeeColumns+` FROM employee WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns all employees ordered by ID
func (r *EmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	var es []domain.Employee
	err := selectAll(ctx, r.db, "employees", &es,
		`SELECT `+employeeColumns+` FROM employee ORDER BY id`)
	return es, err
}

// Delete removes an employee. It fails while any sale references them.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, r.db, "employee", `DELETE FROM employee WHERE id = ?`, id)
}

// Sales lists the sales recorded by the employee ordered by ID
func (r *EmployeeRepo) Sales(ctx context.Context, id int64) ([]domain.Sale, error) {
	var ss []domain.Sale
	err := selectAll(ctx, r.db, "sales", &ss,
		`SELECT `+saleColumns+` FROM sale WHERE employee_id = ? ORDER BY id`, id)
	return ss, err
}

// ============================================================================
// Client
// ============================================================================

// ClientRepo implements repository.ClientRepository
type ClientRepo struct {
	db *sqlx.DB
}

// Create inserts a client. A zero ID is assigned by the database.
func (r *ClientRepo) Create(ctx context.Context, c *domain.Client) error {
	id, err := insert(ctx, r.db, "client", `
		INSERT INTO client (id, name, national_id, email, phone) VALUES (?, ?, ?, ?, ?)
	`, surrogateID(c.ID), required(c.Name), required(c.NationalID), nullable(c.Email), nullable(c.Phone))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// Get retrieves a client by ID
func (r *ClientRepo) Get(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	if err := getOne(ctx, r.db, "client", &c,
		`SELECT `+clientColumns+` FROM client WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all clients ordered by ID
func (r *ClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	var cs []domain.Client
	err := selectAll(ctx, r.db, "clients", &cs,
		`SELECT `+clientColumns+` FROM client ORDER BY id`)
	return cs, err
}

// Delete removes a client. It fails while any sale references them.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, r.db, "client", `DELETE FROM client WHERE id = ?`, id)
}

// Sales lists the client's purchases ordered by ID
func (r *ClientRepo) Sales(ctx context.Context, id int64) ([]domain.Sale, error) {
	var ss []domain.Sale
	err := selectAll(ctx, r.db, "sales", &ss,
		`SELECT `+saleColumns+` FROM sale WHERE client_id = ? ORDER BY id`, id)
	return ss, err
}

// ============================================================================
// Sale
// ============================================================================

// SaleRepo implements repository.SaleRepository
type SaleRepo struct {
	db *sqlx.DB
}

// Create inserts a sale. A zero ID is assigned by the database.
func (r *SaleRepo) Create(ctx context.Context, s *domain.Sale) error {
	id, err := insertSale(ctx, r.db, s)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// CreateWithItems inserts the sale and its lines in one transaction. The
// sale's ID and each item's SaleID are set only once the transaction commits.
func (r *SaleRepo) CreateWithItems(ctx context.Context, s *domain.Sale, items []domain.ItemSale) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := insertSale(ctx, tx, s)
	if err != nil {
		return err
	}

	for _, item := range items {
		item.SaleID = id
		if err := insertItem(ctx, tx, &item); err != nil {
			return fmt.Errorf("item %s: %w", item.ISBN, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.ID = id
	for i := range items {
		items[i].SaleID = id
	}
	return nil
}

func insertSale(ctx context.Context, e sqlx.ExecerContext, s *domain.Sale) (int64, error) {
	return insert(ctx, e, "sale", `
		INSERT INTO sale (id, date, total_amount, payment_method, client_id, employee_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, surrogateID(s.ID), nullable(s.Date), nullable(s.TotalAmount), nullable(s.PaymentMethod),
		nullable(s.ClientID), nullable(s.EmployeeID))
}

func insertItem(ctx context.Context, e sqlx.ExecerContext, item *domain.ItemSale) error {
	_, err := insert(ctx, e, "sale item", `
		INSERT INTO item_sale (sale_id, isbn, quantity, unit_price) VALUES (?, ?, ?, ?)
	`, item.SaleID, required(item.ISBN), item.Quantity, item.UnitPrice)
	return err
}

// Get retrieves a sale by ID
func (r *SaleRepo) Get(ctx context.Context, id int64) (*domain.Sale, error) {
	var s domain.Sale
	if err := getOne(ctx, r.db, "sale", &s,
		`SELECT `+saleColumns+` FROM sale WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all sales ordered by ID
func (r *SaleRepo) List(ctx context.Context) ([]domain.Sale, error) {
	var ss []domain.Sale
	err := selectAll(ctx, r.db, "sales", &ss,
		`SELECT `+saleColumns+` FROM sale ORDER BY id`)
	return ss, err
}

// Delete removes a sale together with its line items
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	return deleteOne(ctx, r.db, "sale", `DELETE FROM sale WHERE id = ?`, id)
}

// Client returns the sale's buyer
func (r *SaleRepo) Client(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	if err := getOne(ctx, r.db, "client", &c, `
		SELECT `+qualified("c", clientColumns)+`
		FROM client c JOIN sale s ON s.client_id = c.id
		WHERE s.id = ?
	`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// Employee returns the sale's seller
func (r *SaleRepo) Employee(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	if err := getOne(ctx, r.db, "employee", &e, `
		SELECT `+qualified("e", employeeColumns)+`
		FROM employee e JOIN sale s ON s.employee_id = e.id
		WHERE s.id = ?
	`, id); err != nil {
		return nil, err
	}
	return &e, nil
}

// AddItem inserts a line item. The sale and the book must already exist.
func (r *SaleRepo) AddItem(ctx context.Context, item *domain.ItemSale) error {
	return insertItem(ctx, r.db, item)
}

// Items lists the sale's line items ordered by ISBN
func (r *SaleRepo) Items(ctx context.Context, id int64) ([]domain.ItemSale, error) {
	var items []domain.ItemSale
	err := selectAll(ctx, r.db, "sale items", &items,
		`SELECT `+itemSaleColumns+` FROM item_sale WHERE sale_id = ? ORDER BY isbn`, id)
	return items, err
}

// Books lists the books sold in the sale ordered by ISBN
func (r *SaleRepo) Books(ctx context.Context, id int64) ([]domain.Book, error) {
	var bs []domain.Book
	err := selectAll(ctx, r.db, "books", &bs, `
		SELECT `+qualified("b", bookColumns)+`
		FROM book b JOIN item_sale i ON i.isbn = b.isbn
		WHERE i.sale_id = ?
		ORDER BY b.isbn
	`, id)
	return bs, err
}
