package mupdf

import "github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"

// Build metadata, populated at release time via ldflags.
var (
	Version   = "v0.0.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// WrapperVersion returns the semantic version of this binding layer.
func WrapperVersion() string {
	return Version
}

// NativeVersion returns the version string of the linked MuPDF
// library, or the empty string in a stub build.
func NativeVersion() string {
	return ffi.Version()
}

// Built reports whether the native library is linked into this binary.
// When false, every constructor in this package returns ErrNotBuilt.
func Built() bool {
	return ffi.Built
}
