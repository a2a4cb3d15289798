package mupdf_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

func TestErrorFormatting(t *testing.T) {
	e := &mupdf.Error{Code: mupdf.CodeSyntax, Message: "unexpected token"}
	got := e.Error()
	if got != "mupdf: syntax: unexpected token" {
		t.Fatalf("Error() = %q", got)
	}

	e = &mupdf.Error{Code: mupdf.CodeGeneric, Message: "something failed"}
	if e.Error() != "mupdf: something failed" {
		t.Fatalf("Error() = %q", e.Error())
	}
}

func TestErrorUnwrapping(t *testing.T) {
	var inner error = &mupdf.Error{Code: mupdf.CodeArgument, Message: "bad arg"}
	wrapped := fmt.Errorf("loading page: %w", inner)

	var me *mupdf.Error
	if !errors.As(wrapped, &me) {
		t.Fatal("errors.As failed through a wrap")
	}
	if me.Code != mupdf.CodeArgument {
		t.Fatalf("code = %v", me.Code)
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		mupdf.ErrClosed,
		mupdf.ErrNotBuilt,
		mupdf.ErrClonesOpen,
		mupdf.ErrInvalidLanguage,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinel %v matches %v", a, b)
			}
		}
	}
}

func TestNotBuiltPath(t *testing.T) {
	if mupdf.Built() {
		t.Skip("native library is linked in")
	}
	_, err := mupdf.NewContext(mupdf.DefaultConfig())
	if !errors.Is(err, mupdf.ErrNotBuilt) {
		t.Fatalf("NewContext in stub build = %v, want ErrNotBuilt", err)
	}
}
