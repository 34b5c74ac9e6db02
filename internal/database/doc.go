// Package database provides SQLite-based persistence for canonical card
// records.
//
// The store is a single database file holding the cards table, keyed by
// the natural card number. The crawler only ever inserts or updates; cards
// are never deleted here. Each upsert is a single atomic statement pair,
// so an interrupted crawl leaves the database valid, just partially
// refreshed.
//
// We use modernc.org/sqlite (pure Go, no cgo) so the tool cross-compiles
// cleanly.
package database
