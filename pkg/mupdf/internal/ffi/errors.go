package ffi

import "errors"

// ErrNotBuilt reports that the native library was not linked into the
// current binary.
var ErrNotBuilt = errors.New("mupdf/internal/ffi: native library not built")

// ErrorCode mirrors the native FZ_ERROR_* classification of a caught
// exception. The values track MuPDF 1.24 and later.
type ErrorCode int

const (
	ErrCodeNone ErrorCode = iota
	ErrCodeGeneric
	ErrCodeSystem
	ErrCodeLibrary
	ErrCodeArgument
	ErrCodeLimit
	ErrCodeUnsupported
	ErrCodeFormat
	ErrCodeSyntax
	ErrCodeTryLater
	ErrCodeAbort
	ErrCodeRepaired
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeNone:
		return "none"
	case ErrCodeGeneric:
		return "generic"
	case ErrCodeSystem:
		return "system"
	case ErrCodeLibrary:
		return "library"
	case ErrCodeArgument:
		return "argument"
	case ErrCodeLimit:
		return "limit"
	case ErrCodeUnsupported:
		return "unsupported"
	case ErrCodeFormat:
		return "format"
	case ErrCodeSyntax:
		return "syntax"
	case ErrCodeTryLater:
		return "trylater"
	case ErrCodeAbort:
		return "abort"
	case ErrCodeRepaired:
		return "repaired"
	default:
		return "unknown"
	}
}

// Error carries a caught native exception across the boundary. The
// message is copied out of native memory before the native record is
// released, so an Error stays valid for as long as the caller keeps it.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	if e.Code == ErrCodeNone || e.Code == ErrCodeGeneric {
		return "mupdf: " + e.Message
	}
	return "mupdf: " + e.Code.String() + ": " + e.Message
}
