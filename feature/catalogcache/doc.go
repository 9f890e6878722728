// Package catalogcache stores fetched parts lists in the database.
//
// The remote catalog pages a kit's parts list over several requests; once a
// kit has been fetched completely its rows are kept in the cached_parts table
// so re-selecting the kit is a single local query. Only catalog-sourced data
// is cached: reconciled counts and the acquisition event log itself never
// touch the database.
//
// The feature is optional. When no database connection is configured the
// application wires the raw fetcher and every selection pages through the
// catalog.
package catalogcache
