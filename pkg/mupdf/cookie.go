package mupdf

import (
	"context"
	"runtime"
	"sync"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// Cookie is the cooperative progress and abort channel for a running
// render. The native library polls the abort flag between rendering
// bands; cancellation is never preemptive.
type Cookie struct {
	ctx  *Context
	h    *ffi.Cookie
	stop func()
	mu   sync.Mutex
}

// NewCookie allocates a cookie on the given context.
func NewCookie(c *Context) (*Cookie, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewCookie(fc)
	if err != nil {
		return nil, remapError(err)
	}
	k := &Cookie{ctx: c, h: h}
	runtime.SetFinalizer(k, func(k *Cookie) { k.Drop() })
	return k, nil
}

// Abort requests that the running operation stop at its next check.
func (k *Cookie) Abort() {
	if k == nil || k.h == nil {
		return
	}
	k.h.Abort()
}

// Aborted reports whether Abort has been requested.
func (k *Cookie) Aborted() bool {
	if k == nil || k.h == nil {
		return false
	}
	return k.h.Aborted()
}

// Progress reports operations completed and the expected total; the
// total is zero while unknown.
func (k *Cookie) Progress() (done, max int) {
	if k == nil || k.h == nil {
		return 0, 0
	}
	return k.h.Progress()
}

// Errors counts rendering errors suppressed so far.
func (k *Cookie) Errors() int {
	if k == nil || k.h == nil {
		return 0
	}
	return k.h.Errors()
}

// Incomplete reports whether rendering stopped before completion.
func (k *Cookie) Incomplete() bool {
	if k == nil || k.h == nil {
		return false
	}
	return k.h.Incomplete()
}

// Bind links Go cancellation to the native abort flag: when ctx is
// done the cookie aborts. The returned release function detaches the
// watch and must be called once the guarded operation has finished; it
// is also invoked by Drop.
func (k *Cookie) Bind(ctx context.Context) (release func()) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.stop != nil {
		k.stop()
		k.stop = nil
	}
	done := make(chan struct{})
	var once sync.Once
	go func() {
		select {
		case <-ctx.Done():
			k.Abort()
		case <-done:
		}
	}()
	rel := func() { once.Do(func() { close(done) }) }
	k.stop = rel
	return rel
}

// Drop releases the cookie, detaching any bound context first.
func (k *Cookie) Drop() {
	if k == nil || k.h == nil {
		return
	}
	runtime.SetFinalizer(k, nil)
	k.mu.Lock()
	if k.stop != nil {
		k.stop()
		k.stop = nil
	}
	k.mu.Unlock()
	h := k.h
	k.h = nil
	k.ctx.dropNative("cookie", func(fc *ffi.Context) { h.Drop(fc) })
}
