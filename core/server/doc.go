// Package server holds configuration for the HTTP server layer.
//
// It is kept as its own package so the reflection-based binding in core/config
// can register its keys (server.port, server.api_key) without importing the
// Fiber application itself.
package server
