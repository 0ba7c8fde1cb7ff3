// Package bundle downloads the pre-built console bundle from object
// storage into the local asset root.
//
// The bundle is produced by an external build pipeline and uploaded to a
// bucket; the fetch command mirrors the bucket contents to disk so the
// server can serve them. No build logic lives here.
package bundle
