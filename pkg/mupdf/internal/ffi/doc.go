// Package ffi hosts the thin cgo layer that links the Go API to the
// native MuPDF library. The real implementation lives behind build tags
// so that the rest of the repository can compile without cgo.
//
// Every entry point takes the owning Context explicitly. Handles are
// plain pointers into native memory; lifetime and locking discipline is
// the caller's responsibility and is enforced one level up, in pkg/mupdf.
package ffi
