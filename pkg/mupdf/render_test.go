package mupdf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/testpdf"
)

func TestRenderPages(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.WithPageTexts("one", "two", "three", "four"), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	pixmaps, err := mupdf.RenderPages(context.Background(), c, doc, mupdf.RenderOptions{
		Matrix:  mupdf.Scale(0.5, 0.5),
		Workers: 2,
	})
	require.NoError(t, err)
	require.Len(t, pixmaps, 4)

	for i, px := range pixmaps {
		require.Equalf(t, testpdf.PageWidth/2, px.Width(), "page %d", i)
		require.Equalf(t, testpdf.PageHeight/2, px.Height(), "page %d", i)
		px.Drop()
	}
}

func TestRenderPagesSubset(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.WithPages(5), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	pixmaps, err := mupdf.RenderPages(context.Background(), c, doc, mupdf.RenderOptions{
		Pages: []int{4, 0},
	})
	require.NoError(t, err)
	require.Len(t, pixmaps, 2)
	for _, px := range pixmaps {
		require.Equal(t, testpdf.PageWidth, px.Width())
		px.Drop()
	}
}

func TestRenderPagesCanceled(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.WithPages(3), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = mupdf.RenderPages(ctx, c, doc, mupdf.RenderOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCookieAbort(t *testing.T) {
	c := newTestContext(t)

	k, err := mupdf.NewCookie(c)
	require.NoError(t, err)
	defer k.Drop()

	require.False(t, k.Aborted())
	k.Abort()
	require.True(t, k.Aborted())
}
