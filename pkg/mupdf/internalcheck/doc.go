// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests enforced over the mupdf-go source
// tree: cgo and unsafe stay confined to the ffi layer, and the library
// never panics on native errors. It is not intended for external use
// and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the mupdf-go library. Use the public
// API provided by pkg/mupdf instead.
package internalcheck
