// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and the methods that fetch and persist
// rows, keeping SQL out of the HTTP layer. Each method issues exactly one
// statement against the shared pool; there are no cross-call transactions.
//
// Errors are returned to the caller, never logged here. Lookups distinguish
// "no matching row" from failure by returning (nil, nil).
package repository
