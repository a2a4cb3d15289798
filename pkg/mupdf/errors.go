package mupdf

import (
	"errors"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

var (
	// ErrClosed reports an operation on a dropped or closed wrapper.
	ErrClosed = errors.New("mupdf: handle has been closed")

	// ErrNotBuilt reports that the native library is not linked into
	// this binary (cgo disabled, or an unsupported platform).
	ErrNotBuilt = errors.New("mupdf: native library not built")

	// ErrClonesOpen reports an attempt to close a base context while
	// cloned contexts derived from it are still open.
	ErrClonesOpen = errors.New("mupdf: context has open clones")

	// ErrInvalidLanguage reports a text language tag that does not
	// carry a usable ISO 639 base language.
	ErrInvalidLanguage = errors.New("mupdf: invalid language tag")
)

// ErrorCode classifies a caught native exception, mirroring the
// FZ_ERROR_* values.
type ErrorCode int

const (
	CodeNone ErrorCode = iota
	CodeGeneric
	CodeSystem
	CodeLibrary
	CodeArgument
	CodeLimit
	CodeUnsupported
	CodeFormat
	CodeSyntax
	CodeTryLater
	CodeAbort
	CodeRepaired
)

func (c ErrorCode) String() string {
	return ffi.ErrorCode(c).String()
}

// Error is a native exception translated at the boundary. The message
// text was copied out of native memory before the exception scope
// ended, so the value stays valid indefinitely.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	if e.Code == CodeNone || e.Code == CodeGeneric {
		return "mupdf: " + e.Message
	}
	return "mupdf: " + e.Code.String() + ": " + e.Message
}

// remapError rewrites ffi-layer errors into their public forms. Errors
// that are not from the ffi layer pass through unchanged.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	var fe *ffi.Error
	if errors.As(err, &fe) {
		return &Error{Code: ErrorCode(fe.Code), Message: fe.Message}
	}
	if errors.Is(err, ffi.ErrNotBuilt) {
		return ErrNotBuilt
	}
	return err
}
