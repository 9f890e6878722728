// Package reconcile implements per-part count reconciliation.
//
// During reconciliation the collector checks received pieces off against the
// catalog's expected counts: increment is unbounded, decrement is clamped at
// zero, and the difference is classified as balanced, missing, or extra.
package reconcile
