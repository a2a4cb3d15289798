// Package logging provides a minimal logging facade for the MuPDF wrapper.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing, redaction,
// or integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/fitzgo/mupdf-go/pkg/mupdf/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Native Warnings
//
// The rendering engine emits warnings while parsing damaged files. Passing a
// Logger through mupdf.Config routes those warnings here instead of the
// engine's default stderr printing:
//
//	ctx, err := mupdf.NewContext(mupdf.Config{Warnings: logging.New(nil)})
//
// # Redaction Support
//
// The package provides utilities for redacting sensitive information, such as
// document passwords:
//
//	// Mark an attribute as redacted
//	logger.Info(ctx, "document unlocked", logging.Redacted("password"))
//	// Logs: password="[redacted]"
//
//	// Get the redaction placeholder
//	placeholder := logging.Placeholder() // Returns "[redacted]"
//
// # Security Considerations
//
//   - Never log document passwords or decrypted content
//   - Use logging.Redacted() to mark sensitive attributes
//   - Ensure log storage is secure and access-controlled
package logging
