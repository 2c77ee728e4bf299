// Package sqlerr classifies database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them into
// typed errors the rest of the application can branch on, e.g. turning a
// unique violation into a "already exists" bad request instead of an opaque
// 500.
package sqlerr
