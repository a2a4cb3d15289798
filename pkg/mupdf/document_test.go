package mupdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/testpdf"
)

func TestOpenDocumentFromBytes(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.WithPages(3), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	n, err := doc.PageCount()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	needs, err := doc.NeedsPassword()
	require.NoError(t, err)
	require.False(t, needs)

	canPrint, err := doc.HasPermission(mupdf.PermissionPrint)
	require.NoError(t, err)
	require.True(t, canPrint)
}

func TestOpenDocumentInvalidBytes(t *testing.T) {
	c := newTestContext(t)

	_, err := mupdf.OpenDocumentFromBytes(c, testpdf.Invalid(), "pdf")
	require.Error(t, err)

	var me *mupdf.Error
	require.ErrorAs(t, err, &me)
	require.NotEmpty(t, me.Message)
}

func TestDocumentMetadata(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.WithTitle("Quarterly Report"), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	title, err := doc.Metadata(mupdf.MetaInfoTitle)
	require.NoError(t, err)
	require.Equal(t, "Quarterly Report", title)

	format, err := doc.Metadata(mupdf.MetaFormat)
	require.NoError(t, err)
	require.Contains(t, format, "PDF")

	// A missing key is empty, not an error.
	author, err := doc.Metadata(mupdf.MetaInfoAuthor)
	require.NoError(t, err)
	require.Empty(t, author)
}

func TestLoadPageOutOfRange(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.Minimal(), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	_, err = doc.LoadPage(1)
	require.ErrorContains(t, err, "page_no is not a valid page")

	_, err = doc.LoadPage(-1)
	require.ErrorContains(t, err, "page_no is not a valid page")
}

func TestLayoutRejectsNonPositiveSize(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.Minimal(), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	err = doc.Layout(0, 792, 12)
	require.ErrorContains(t, err, "invalid width or height")

	err = doc.Layout(612, -1, 12)
	require.ErrorContains(t, err, "invalid width or height")
}

func TestRecognizeDocument(t *testing.T) {
	c := newTestContext(t)

	ok, err := mupdf.RecognizeDocument(c, "pdf")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = mupdf.RecognizeDocument(c, "no-such-format")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestConvertToPDFRotation(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.WithPages(2), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	for _, rotate := range []int{0, 90, 180, 270, -90, 360} {
		pdf, err := doc.ConvertToPDF(0, 1, rotate, nil)
		require.NoErrorf(t, err, "rotate %d", rotate)
		n, err := pdf.CountPages()
		require.NoError(t, err)
		require.Equal(t, 2, n)
		pdf.Drop()
	}

	for _, rotate := range []int{45, 91, -100} {
		_, err := doc.ConvertToPDF(0, 1, rotate, nil)
		require.ErrorContainsf(t, err, "rotation not multiple of 90", "rotate %d", rotate)
	}
}

func TestDocumentOutlinesEmpty(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.Minimal(), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	outlines, err := doc.Outlines()
	require.NoError(t, err)
	require.Nil(t, outlines)
}
