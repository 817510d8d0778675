// Package domain defines the entity types of the bookstore data model.
//
// Each type mirrors one table row. Nullable columns are pointer fields so
// that an absent value is distinguishable from a zero value. Struct tags
// carry the column names (db) and the wire names (json).
//
// # Catalog
//
// Publisher and Category classify a Book. Book is keyed by its ISBN.
// Author is linked to Book through the BookAuthor associative row.
//
// # Sales
//
// Employee and Client take part in a Sale. The lines of a sale are ItemSale
// rows, each pairing a sale with a book and carrying quantity and unit price.
//
// Types in this package hold data only. Constraints (required, unique,
// referential) are enforced by the storage engine.
package domain
