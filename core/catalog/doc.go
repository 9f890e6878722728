// Package catalog provides the HTTP client for the remote part catalog service.
//
// The catalog is an external collaborator: it exposes a fulltext kit search and
// a paginated parts list per kit. Both endpoints return the same raw record
// shape (TicketRecord) wrapped in a status envelope.
//
// This package is transport only. It knows the wire shapes, the timeout
// discipline, and nothing about the inventory domain; converting catalog
// records into domain parts and driving the page loop is the job of
// feature/inventory.
//
// # Endpoints
//
//   - GET /catalog/search?category=<id>&text=<query>
//   - GET /catalog/partslist/{kitId}?page=<n>
package catalog
