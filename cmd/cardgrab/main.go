// Package main provides the entry point for the cardgrab CLI.
//
// cardgrab crawls the official One Piece card game catalog and maintains
// a local SQLite database of card data plus downloaded card art.
//
// Usage:
//
//	cardgrab fetch OP01-001 OP01-002
//	cardgrab set EB04
//	cardgrab all
//
// See --help for all available options.
package main

// main is the entry point for cardgrab.
func main() {
	Execute()
}
