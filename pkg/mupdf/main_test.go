package mupdf_test

import (
	"testing"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

// newTestContext returns a base context, skipping the test when the
// native library is not linked in.
func newTestContext(t *testing.T) *mupdf.Context {
	t.Helper()
	if !mupdf.Built() {
		t.Skip("native library not built")
	}
	c, err := mupdf.NewContext(mupdf.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}
