// Package images downloads card art into the local cards directory.
//
// Downloads are best-effort: a failed image never fails the crawl, the
// card record is simply stored without a local image path. Writes are
// all-or-nothing; the body is fully buffered before the file is created,
// so a failed download leaves no partial file behind.
package images
