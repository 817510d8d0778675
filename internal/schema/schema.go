package schema

import (
	"fmt"
	"strings"
)

// ColumnType is the SQLite type affinity declared for a column
type ColumnType string

const (
	Integer ColumnType = "INTEGER"
	Text    ColumnType = "TEXT"
	Real    ColumnType = "REAL"
	// Date is declared as DATE so the driver maps values to time.Time
	Date ColumnType = "DATE"
)

// Action is the referential action taken when a parent row is deleted
type Action string

const (
	NoAction Action = ""
	Restrict Action = "RESTRICT"
	Cascade  Action = "CASCADE"
)

// Column describes a persisted column and its constraints
type Column struct {
	Name    string
	Type    ColumnType
	NotNull bool
	Unique  bool
}

// ForeignKey links a column to the primary key of another table
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  Action
}

// Index is a secondary (non-unique) index
type Index struct {
	Name    string
	Columns []string
}

// Table describes one relational table
type Table struct {
	Name        string
	Columns     []Column
	PrimaryKey  []string
	ForeignKeys []ForeignKey
	Indexes     []Index
}

// Column returns the named column
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ForeignKey returns the foreign key declared on the named column
func (t Table) ForeignKey(column string) (ForeignKey, bool) {
	for _, fk := range t.ForeignKeys {
		if fk.Column == column {
			return fk, true
		}
	}
	return ForeignKey{}, false
}

// IsAssociative reports whether the table only resolves a many-to-many
// relationship: its primary key is composite and made entirely of foreign keys.
func (t Table) IsAssociative() bool {
	if len(t.PrimaryKey) < 2 {
		return false
	}
	for _, col := range t.PrimaryKey {
		if _, ok := t.ForeignKey(col); !ok {
			return false
		}
	}
	return true
}

// CreateStatement renders the CREATE TABLE IF NOT EXISTS statement
func (t Table) CreateStatement() string {
	var lines []string

	// A single-column integer PK is inlined so it aliases the rowid
	inlinePK := len(t.PrimaryKey) == 1

	for _, c := range t.Columns {
		line := c.Name + " " + string(c.Type)
		if inlinePK && c.Name == t.PrimaryKey[0] {
			line += " PRIMARY KEY"
		}
		if c.NotNull {
			line += " NOT NULL"
		}
		if c.Unique {
			line += " UNIQUE"
		}
		lines = append(lines, line)
	}

	if !inlinePK && len(t.PrimaryKey) > 0 {
		lines = append(lines, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(t.PrimaryKey, ", ")))
	}

	for _, fk := range t.ForeignKeys {
		line := fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s)", fk.Column, fk.RefTable, fk.RefColumn)
		if fk.OnDelete != NoAction {
			line += " ON DELETE " + string(fk.OnDelete)
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", t.Name, strings.Join(lines, ",\n\t"))
}

// IndexStatements renders CREATE INDEX IF NOT EXISTS for each secondary index
func (t Table) IndexStatements() []string {
	stmts := make([]string, 0, len(t.Indexes))
	for _, idx := range t.Indexes {
		stmts = append(stmts, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)",
			idx.Name, t.Name, strings.Join(idx.Columns, ", ")))
	}
	return stmts
}

// Statements returns the full DDL in creation order: every table first,
// then every index.
func Statements() []string {
	tables := Tables()
	stmts := make([]string, 0, len(tables)*2)
	for _, t := range tables {
		stmts = append(stmts, t.CreateStatement())
	}
	for _, t := range tables {
		stmts = append(stmts, t.IndexStatements()...)
	}
	return stmts
}

// TableNames returns the table names in creation order
func TableNames() []string {
	tables := Tables()
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the table with the given name
func Lookup(name string) (Table, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
