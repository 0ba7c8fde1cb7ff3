// Package console serves the pre-built gateway console bundle.
//
// The console is a single-page application built ahead of time into a
// directory of static files. The feature registers one catch-all route
// and classifies every request path:
//
//   - "/" and the entry document's own path are answered with the entry
//     document, with the resolved gateway endpoint and token injected
//     into the head section so the console reads them before any of its
//     own scripts run.
//   - Paths matching a file under the asset root are served as raw bytes
//     with a content type derived from the file extension.
//   - Everything else falls back to the injected entry document, so the
//     console's client-side router can take over. The surface never
//     emits a 404 or a redirect.
//
// The injected document is computed once and reused for the process
// lifetime; only a missing entry document (a broken deployment) surfaces
// as a server error.
package console
