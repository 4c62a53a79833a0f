// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register().
// cmd/stockroom and internal/testdb import this package for its side effects.
package migrations
