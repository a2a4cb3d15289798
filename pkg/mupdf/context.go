package mupdf

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
	"github.com/fitzgo/mupdf-go/pkg/mupdf/logging"
)

// Context owns one native interpreter context. A base context carries
// its own lock table, so two base contexts never share mutexes; clones
// share the base's store and locks and are the unit of multi-goroutine
// rendering.
//
// A Context is not safe for concurrent native calls. Goroutines that
// need to work in parallel should each hold their own Clone of a
// shared base.
type Context struct {
	mu     sync.Mutex
	fc     *ffi.Context
	parent *Context // non-nil for clones
	clones int      // live clones, base only
	closed bool
	log    logging.Logger
}

// NewContext constructs a base context. The native bootstrap
// initializes a private mutex set, registers the built-in document
// handlers and silences the default stderr logging; warnings are
// forwarded to cfg.Warnings when set.
func NewContext(cfg Config) (*Context, error) {
	fc, err := ffi.NewContext(cfg.MaxStore)
	if err != nil {
		return nil, remapError(err)
	}
	log := cfg.Warnings
	if log == nil {
		log = logging.Nop()
	}
	c := &Context{fc: fc, log: log}
	if cfg.Warnings != nil {
		fc.InstallWarningHandler(func(msg string) {
			log.Warn(context.Background(), "mupdf warning", "message", msg)
		})
	}
	runtime.SetFinalizer(c, func(c *Context) { _ = c.Close() })
	return c, nil
}

// Clone derives a context sharing the receiver's store and lock table.
// Only a base context may be cloned, and every clone must be closed
// before its base.
func (c *Context) Clone() (*Context, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	if c.parent != nil {
		return nil, fmt.Errorf("mupdf: cannot clone a cloned context")
	}
	fc, err := c.fc.Clone()
	if err != nil {
		return nil, remapError(err)
	}
	c.clones++
	cl := &Context{fc: fc, parent: c, log: c.log}
	runtime.SetFinalizer(cl, func(cl *Context) { _ = cl.Close() })
	return cl, nil
}

// Close releases the context. Closing the base tears down the lock
// table, so it fails with ErrClonesOpen while clones are live. Close
// is not idempotent: a second call reports ErrClosed.
func (c *Context) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.clones > 0 {
		n := c.clones
		c.mu.Unlock()
		return fmt.Errorf("%w: %d still open", ErrClonesOpen, n)
	}
	c.closed = true
	fc := c.fc
	c.fc = nil
	c.mu.Unlock()

	runtime.SetFinalizer(c, nil)
	fc.Drop()
	if c.parent != nil {
		c.parent.mu.Lock()
		c.parent.clones--
		c.parent.mu.Unlock()
	}
	return nil
}

// handle returns the live ffi context or ErrClosed.
func (c *Context) handle() (*ffi.Context, error) {
	if c == nil {
		return nil, ErrClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	return c.fc, nil
}

// dropNative runs release against the live ffi context. Once the
// context is gone the native memory is unrecoverable, so a late drop
// degrades to a logged no-op instead of freeing through a dead context.
func (c *Context) dropNative(what string, release func(*ffi.Context)) {
	fc, err := c.handle()
	if err != nil {
		c.log.Debug(context.Background(), "drop after context close", "handle", what)
		return
	}
	release(fc)
}

// AdjustRectForStroke expands r to cover what stroking it with stroke
// under ctm would touch.
func (c *Context) AdjustRectForStroke(r Rect, stroke *StrokeState, ctm Matrix) (Rect, error) {
	fc, err := c.handle()
	if err != nil {
		return Rect{}, err
	}
	if stroke == nil || stroke.h == nil {
		return Rect{}, ErrClosed
	}
	out, err := fc.AdjustRectForStroke(r.ffi(), stroke.h, ctm.ffi())
	if err != nil {
		return Rect{}, remapError(err)
	}
	return rectFromFFI(out), nil
}
