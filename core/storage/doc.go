// Package storage provides the object storage client used to fetch the
// pre-built console bundle.
//
// The client is a thin interface over minio-go, narrowed to the read
// operations the fetch command needs (bucket check, listing, download).
// The build step that produces the bundle is an external collaborator;
// this package only transports its output.
package storage
