// Package model defines the core data structures used throughout cardgrab.
//
// This package contains the following main types:
//   - Card: The canonical card record persisted to the database
//   - Set: A card set (offer type) from the remote catalog
//   - CrawlSummary: The end-of-run report shown to the operator
//
// It also holds the pure identity-extraction helpers that derive card
// numbers and set codes from catalog payloads and image filenames.
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (catalog, crawler, database, report) need
// these types, so centralizing them prevents import cycles.
package model
