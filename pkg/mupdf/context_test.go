package mupdf_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/testpdf"
)

func TestContextLifecycle(t *testing.T) {
	if !mupdf.Built() {
		t.Skip("native library not built")
	}

	c, err := mupdf.NewContext(mupdf.DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.ErrorIs(t, c.Close(), mupdf.ErrClosed)

	_, err = mupdf.OpenDocumentFromBytes(c, testpdf.Minimal(), "pdf")
	require.ErrorIs(t, err, mupdf.ErrClosed)
}

func TestContextCloneBlocksBaseClose(t *testing.T) {
	if !mupdf.Built() {
		t.Skip("native library not built")
	}

	base, err := mupdf.NewContext(mupdf.DefaultConfig())
	require.NoError(t, err)

	clone, err := base.Clone()
	require.NoError(t, err)

	err = base.Close()
	require.ErrorIs(t, err, mupdf.ErrClonesOpen)

	require.NoError(t, clone.Close())
	require.NoError(t, base.Close())
}

func TestContextCloneOfCloneFails(t *testing.T) {
	base := newTestContext(t)

	clone, err := base.Clone()
	require.NoError(t, err)
	defer clone.Close()

	_, err = clone.Clone()
	require.Error(t, err)
}

// Two base contexts carry independent lock tables, so fully parallel
// use never crosses a shared mutex.
func TestIndependentContextsInParallel(t *testing.T) {
	if !mupdf.Built() {
		t.Skip("native library not built")
	}

	data := testpdf.WithPageTexts("first", "second", "third")

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			c, err := mupdf.NewContext(mupdf.DefaultConfig())
			if err != nil {
				return err
			}
			defer c.Close()

			doc, err := mupdf.OpenDocumentFromBytes(c, data, "pdf")
			if err != nil {
				return err
			}
			defer doc.Drop()

			n, err := doc.PageCount()
			if err != nil {
				return err
			}
			if n != 3 {
				return errors.New("wrong page count")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDropAfterContextCloseIsNoOp(t *testing.T) {
	if !mupdf.Built() {
		t.Skip("native library not built")
	}

	c, err := mupdf.NewContext(mupdf.DefaultConfig())
	require.NoError(t, err)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.Minimal(), "pdf")
	require.NoError(t, err)

	// Wrong order on purpose: the document drop after context close
	// must degrade to a no-op instead of touching freed memory.
	require.NoError(t, c.Close())
	doc.Drop()

	_, err = doc.PageCount()
	require.ErrorIs(t, err, mupdf.ErrClosed)
}
