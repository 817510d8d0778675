package domain

import "time"

// Employee records sales
type Employee struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Role string `db:"role" json:"role"`
}

// NewEmployee creates an employee with the required fields set
func NewEmployee(name, role string) *Employee {
	return &Employee{Name: name, Role: role}
}

// Client buys books. NationalID is unique across clients.
type Client struct {
	ID         int64   `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	NationalID string  `db:"national_id" json:"national_id"`
	Email      *string `db:"email" json:"email,omitempty"`
	Phone      *string `db:"phone" json:"phone,omitempty"`
}

// NewClient creates a client with the required fields set
func NewClient(name, nationalID string) *Client {
	return &Client{Name: name, NationalID: nationalID}
}

// Sale is one transaction between a client and an employee
type Sale struct {
	ID            int64      `db:"id" json:"id"`
	Date          *time.Time `db:"date" json:"date,omitempty"`
	TotalAmount   *float64   `db:"total_amount" json:"total_amount,omitempty"`
	PaymentMethod *string    `db:"payment_method" json:"payment_method,omitempty"`
	ClientID      *int64     `db:"client_id" json:"client_id,omitempty"`
	EmployeeID    *int64     `db:"employee_id" json:"employee_id,omitempty"`
}

// ItemSale is one line of a sale. Quantity and UnitPrice are always present.
type ItemSale struct {
	SaleID    int64   `db:"sale_id" json:"sale_id"`
	ISBN      string  `db:"isbn" json:"isbn"`
	Quantity  int     `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
}

// NewItemSale creates a line item
func NewItemSale(saleID int64, isbn string, quantity int, unitPrice float64) *ItemSale {
	return &ItemSale{SaleID: saleID, ISBN: isbn, Quantity: quantity, UnitPrice: unitPrice}
}

// Subtotal returns quantity times unit price
func (i ItemSale) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// SaleTotal sums the subtotals of the given line items
func SaleTotal(items []ItemSale) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
