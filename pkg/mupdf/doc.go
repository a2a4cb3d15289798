// Package mupdf exposes the MuPDF document-rendering engine to Go.
//
// The package adapts MuPDF's context-based, fz_try/fz_catch C API into
// ordinary Go values: every native exception becomes an error return,
// and every native handle crossing the boundary is a typed wrapper with
// an explicit Drop (or Close) plus a finalizer backstop. Wrappers are
// either Owned, in which case Drop releases the native reference, or
// Borrowed, in which case the wrapper is valid only while its parent
// lives and Drop merely detaches.
//
// All native work happens under a Context. A single Context is not safe
// for concurrent native calls; use Context.Clone to give each goroutine
// its own view of a shared store. The base Context must outlive its
// clones and every handle derived from it.
//
// Without cgo, or on Windows, the package still compiles; every
// constructor then reports ErrNotBuilt.
package mupdf
