// Package repository defines the data access interfaces for the bookstore.
//
// There is one interface per entity. Each offers keyed create, get, list and
// delete, plus accessors that follow the entity's foreign keys in both
// directions (Book to its Authors, Author to its Books, Sale to its Items,
// and so on), so callers never write joins themselves.
//
// # SQLite Implementation
//
// The sqlite subpackage implements every interface on one SQLite store.
// It also owns the bootstrap that creates the tables declared in the schema
// package.
//
// # Errors
//
// Keyed lookups that match nothing return ErrNotFound. Constraint violations
// (required, unique, foreign key) come from the storage engine and are
// returned wrapped, never pre-validated.
package repository
