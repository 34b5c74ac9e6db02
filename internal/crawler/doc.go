// Package crawler drives the card-catalog crawl strategies.
//
// Three strategies share one inner pipeline (fetch detail, map, download
// image, upsert): by explicit card numbers, by set, and the full catalog.
// All of them are strictly sequential: one outstanding request at a time,
// paced by a configurable Pacer, deliberately serialized to respect the
// catalog service's rate tolerance. Items are processed in remote order,
// pages in ascending order.
//
// Per-item problems (missing detail, failed image) are recorded in the
// Session and never abort a run. Transport failures get a bounded retry;
// once the budget is exhausted a detail fetch is skipped and recorded
// while a list fetch aborts the run. An unmatched set code is fatal before
// any paging begins.
package crawler
