package mupdf

import "github.com/fitzgo/mupdf-go/pkg/mupdf/logging"

// DefaultMaxStore is the default resource-store budget, matching the
// native library's own default.
const DefaultMaxStore = 256 << 20

// Config carries the knobs for a new Context. The zero value is usable;
// DefaultConfig fills in the store budget the native library would pick
// for itself.
type Config struct {
	// MaxStore caps the byte size of the native resource store
	// (decoded images, fonts, glyph caches). Zero means unlimited.
	MaxStore uint64

	// Warnings receives the native library's warning messages. The
	// default stderr printing is always suppressed; leaving Warnings
	// nil discards warnings entirely.
	Warnings logging.Logger
}

// DefaultConfig returns the configuration NewContext uses when handed
// the zero Config.
func DefaultConfig() Config {
	return Config{MaxStore: DefaultMaxStore}
}
