//go:build cgo && !windows

package ffi

/*
#include "wrapper.h"
*/
import "C"

import (
	"sync"
	"unsafe"
)

// Native callbacks carry an opaque user pointer, not a Go pointer.
// Callback targets are parked in this registry and addressed by handle,
// so no Go pointer ever crosses into native memory.

type handle uintptr

var (
	mu   sync.Mutex
	next handle = 1
	reg         = map[handle]any{}
)

func put(v any) (handle, unsafe.Pointer) {
	mu.Lock()
	h := next
	next++
	reg[h] = v
	mu.Unlock()
	return h, unsafe.Pointer(uintptr(h))
}

func get(ptr unsafe.Pointer) (any, bool) {
	h := handle(uintptr(ptr))
	mu.Lock()
	v, ok := reg[h]
	mu.Unlock()
	return v, ok
}

func del(h handle) {
	mu.Lock()
	delete(reg, h)
	mu.Unlock()
}

//export mupdfgoWarn
func mupdfgoWarn(user unsafe.Pointer, message *C.char) {
	v, ok := get(user)
	if !ok {
		return
	}
	fn, ok := v.(func(string))
	if !ok {
		return
	}
	fn(C.GoString(message))
}

//export mupdfgoPathMoveTo
func mupdfgoPathMoveTo(arg unsafe.Pointer, x, y C.float) {
	if w, ok := walkerFor(arg); ok {
		w.MoveTo(float32(x), float32(y))
	}
}

//export mupdfgoPathLineTo
func mupdfgoPathLineTo(arg unsafe.Pointer, x, y C.float) {
	if w, ok := walkerFor(arg); ok {
		w.LineTo(float32(x), float32(y))
	}
}

//export mupdfgoPathCurveTo
func mupdfgoPathCurveTo(arg unsafe.Pointer, x1, y1, x2, y2, x3, y3 C.float) {
	if w, ok := walkerFor(arg); ok {
		w.CurveTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
	}
}

//export mupdfgoPathClose
func mupdfgoPathClose(arg unsafe.Pointer) {
	if w, ok := walkerFor(arg); ok {
		w.ClosePath()
	}
}

func walkerFor(arg unsafe.Pointer) (PathWalker, bool) {
	v, ok := get(arg)
	if !ok {
		return nil, false
	}
	w, ok := v.(PathWalker)
	return w, ok
}
