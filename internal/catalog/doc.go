// Package catalog provides the HTTP client for the remote card catalog
// service and the translation from its loosely-typed payloads into the
// canonical card model.
//
// The catalog service is the backend of the official card-list website. It
// checks the Origin and Referer of incoming requests, so every call carries
// a fixed browser-like header set. No authentication token is involved.
//
// Design decision: the "leniently parse whatever the remote sends" boundary
// is isolated here. Payload fields that may arrive as strings, numbers,
// nulls, or arrays decode through total, non-panicking wrapper types
// (payload.go), and MapDetail is the single function that turns a raw
// detail record into a model.Card.
package catalog
