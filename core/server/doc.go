// Package server holds the HTTP server bind configuration.
//
// Host and Port are kept as they arrive from the environment; ResolvePort
// performs the coercion to an integer and falls back to DefaultPort for
// malformed values instead of refusing to start.
package server
