// Package inventory implements the kit acquisition tracking feature.
//
// A collector searches the remote catalog for a kit, selects it, reconciles
// the received part counts against the catalog's expected counts, and
// registers the acquisition. Each registration appends one immutable event to
// the append-only log; the per-system summary (pieces, piece types, kits) is
// recomputed from the full log on every read.
//
// # Components
//
//   - Fetcher: pages through the catalog's parts list and merges the pages
//     into one keyed part collection (best effort, never fails).
//   - Controller: owns the single user session; kit selection runs the fetch
//     as a cancellable task so a superseded selection's result is discarded.
//   - Service: registers acquisitions against the event log and derives
//     summaries via the aggregate reducer.
//   - Handler: exposes the HTTP endpoints.
//
// # Subpackages
//
//   - models: domain entities with value semantics.
//   - eventlog: the append-only system of record.
//   - aggregate: the pure event-to-summary reducer.
//   - reconcile: per-part count adjustment and delta classification.
//
// # HTTP Endpoints
//
//   - GET    /inventory/summary      : derived per-system summaries.
//   - GET    /inventory/events       : the event log in append order.
//   - GET    /inventory/kits?text=   : catalog kit search.
//   - POST   /inventory/select       : select a kit, fetch its parts.
//   - DELETE /inventory/select       : clear the selection.
//   - GET    /inventory/parts        : live part collection.
//   - POST   /inventory/parts/:id/adjust : adjust a part count.
//   - POST   /inventory/register     : record the acquisition.
package inventory
