// Package aggregate derives per-system inventory summaries from the event log.
//
// The reducer is deterministic and side-effect free; the summary is never
// stored, only recomputed from the full event sequence on demand.
package aggregate
