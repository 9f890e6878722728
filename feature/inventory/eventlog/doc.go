// Package eventlog implements the append-only acquisition event log.
//
// The log is the sole source of truth for the inventory: every summary shown
// to the user is derived from the full event sequence by feature/inventory/aggregate.
// The log is in-memory only; it does not survive a restart.
package eventlog
