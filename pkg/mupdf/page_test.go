package mupdf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/testpdf"
)

func loadTestPage(t *testing.T, c *mupdf.Context, data []byte, pageNo int) *mupdf.Page {
	t.Helper()
	doc, err := mupdf.OpenDocumentFromBytes(c, data, "pdf")
	require.NoError(t, err)
	t.Cleanup(doc.Drop)
	pg, err := doc.LoadPage(pageNo)
	require.NoError(t, err)
	t.Cleanup(pg.Drop)
	return pg
}

func TestPageBounds(t *testing.T) {
	c := newTestContext(t)

	pg := loadTestPage(t, c, testpdf.Minimal(), 0)
	bounds, err := pg.Bounds()
	require.NoError(t, err)
	require.Equal(t, float32(testpdf.PageWidth), bounds.Width())
	require.Equal(t, float32(testpdf.PageHeight), bounds.Height())
}

func TestPageToPixmap(t *testing.T) {
	c := newTestContext(t)

	pg := loadTestPage(t, c, testpdf.WithPageTexts("ink on paper"), 0)

	rgb, err := mupdf.DeviceRGB(c)
	require.NoError(t, err)

	px, err := pg.ToPixmap(mupdf.Identity, rgb, false, true)
	require.NoError(t, err)
	defer px.Drop()

	require.Equal(t, testpdf.PageWidth, px.Width())
	require.Equal(t, testpdf.PageHeight, px.Height())

	// The text must have left non-white pixels behind.
	samples, err := px.Samples()
	require.NoError(t, err)
	white := true
	for _, s := range samples {
		if s != 0xff {
			white = false
			break
		}
	}
	require.False(t, white, "rendered page is blank")
}

func TestPageToSVG(t *testing.T) {
	c := newTestContext(t)

	pg := loadTestPage(t, c, testpdf.WithPageTexts("vector"), 0)

	svg, err := pg.ToSVG(mupdf.Identity, nil)
	require.NoError(t, err)
	require.Contains(t, svg, "<svg")
}

func TestPageSearch(t *testing.T) {
	c := newTestContext(t)

	pg := loadTestPage(t, c, testpdf.WithPageTexts("needle haystack needle needle"), 0)

	quads, err := pg.Search("needle", 32)
	require.NoError(t, err)
	require.Len(t, quads, 3)
	for _, q := range quads {
		require.False(t, q.Bounds().IsEmpty())
	}

	// hitMax truncates, it does not error.
	quads, err = pg.Search("needle", 2)
	require.NoError(t, err)
	require.Len(t, quads, 2)

	quads, err = pg.Search("absent", 32)
	require.NoError(t, err)
	require.Empty(t, quads)
}

func TestPageDisplayListReplay(t *testing.T) {
	c := newTestContext(t)

	pg := loadTestPage(t, c, testpdf.WithPageTexts("recorded"), 0)

	dl, err := pg.ToDisplayList(true)
	require.NoError(t, err)
	defer dl.Drop()

	bounds, err := dl.Bounds()
	require.NoError(t, err)
	require.Equal(t, float32(testpdf.PageWidth), bounds.Width())

	rgb, err := mupdf.DeviceRGB(c)
	require.NoError(t, err)

	px, err := dl.ToPixmap(mupdf.Identity, rgb, false)
	require.NoError(t, err)
	defer px.Drop()
	require.Equal(t, testpdf.PageWidth, px.Width())

	quads, err := dl.Search("recorded", 8)
	require.NoError(t, err)
	require.Len(t, quads, 1)
}

func TestTextPageExtraction(t *testing.T) {
	c := newTestContext(t)

	pg := loadTestPage(t, c, testpdf.WithPageTexts("Hello, structured world"), 0)

	tp, err := pg.ToTextPage(mupdf.TextPageOptions{})
	require.NoError(t, err)
	defer tp.Drop()

	text, err := tp.Text()
	require.NoError(t, err)
	require.Contains(t, text, "Hello, structured world")

	html, err := tp.HTML(0)
	require.NoError(t, err)
	require.Contains(t, html, "Hello")

	blocks, err := tp.Blocks()
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Equal(t, mupdf.TextBlockText, blocks[0].Kind)
	require.NotEmpty(t, blocks[0].Lines)

	var b strings.Builder
	for _, ch := range blocks[0].Lines[0].Chars {
		b.WriteRune(ch.Rune)
	}
	require.Equal(t, "Hello, structured world", b.String())
}

func TestPageLinksEmpty(t *testing.T) {
	c := newTestContext(t)

	pg := loadTestPage(t, c, testpdf.Minimal(), 0)
	links, err := pg.Links()
	require.NoError(t, err)
	require.Empty(t, links)
}
