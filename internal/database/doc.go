// Package database manages the Postgres connection pool used by the event
// store.
package database
