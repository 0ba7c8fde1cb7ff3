// Package logger wraps zap logger construction for the Console Server.
//
// The logger is configured through the Log section of the application
// configuration: Level selects verbosity, Format selects console or json
// encoding. Console encoding is the default since the server is a local
// development tool and the output is meant for a terminal.
//
// WithRayID enriches a logger with the per-request ray ID set by the
// rayid middleware, so every line emitted while handling a request can
// be correlated.
package logger
