// Package schema declares the bookstore data model as plain Go values.
//
// The package performs no I/O. It describes every table, column, key and
// relationship once, and renders that description to SQLite DDL for the
// storage layer to execute.
//
// # Tables
//
// Nine tables are declared, in creation order:
//
//	publisher, category, book, author, book_author,
//	employee, client, sale, item_sale
//
// book_author and item_sale are associative tables keyed by the composite of
// their two foreign keys.
//
// # Deletion Policy
//
// Junction rows in book_author are removed together with either parent.
// Line items in item_sale are removed together with their sale, but a book
// referenced by a line item cannot be deleted. All other foreign keys use
// SQLite's default NO ACTION, so deleting a referenced parent fails.
//
// # Relations
//
// Each foreign key yields a pair of navigable relations (many-to-one and its
// one-to-many inverse). Each associative table yields a many-to-many pair
// between its two parents.
package schema
