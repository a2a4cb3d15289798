package mupdf_test

import (
	"bytes"
	"path/filepath"
	"testing"

	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/require"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/testpdf"
)

func openTestPDF(t *testing.T, c *mupdf.Context, data []byte) *mupdf.PDFDocument {
	t.Helper()
	pdf, err := mupdf.OpenPDFDocumentFromBytes(c, data)
	require.NoError(t, err)
	t.Cleanup(pdf.Drop)
	return pdf
}

func TestPDFPageRotation(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.Minimal(), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	pg, err := doc.LoadPage(0)
	require.NoError(t, err)
	defer pg.Drop()

	pp, err := pg.PDFPage()
	require.NoError(t, err)
	defer pp.Drop()

	for _, rotation := range []int{0, 90, 180, 270, -90, 360} {
		require.NoErrorf(t, pp.SetRotation(rotation), "rotation %d", rotation)
	}
	for _, rotation := range []int{45, 91, -100} {
		err := pp.SetRotation(rotation)
		require.ErrorContainsf(t, err, "rotation not multiple of 90", "rotation %d", rotation)
	}

	require.NoError(t, pp.SetRotation(90))
	r, err := pp.Rotation()
	require.NoError(t, err)
	require.Equal(t, 90, r)
}

func TestPDFPageBoxes(t *testing.T) {
	c := newTestContext(t)

	pdf := openTestPDF(t, c, testpdf.Minimal())

	pp, err := pdf.NewPage(-1, 612, 792)
	require.NoError(t, err)
	defer pp.Drop()

	media, err := pp.MediaBox()
	require.NoError(t, err)
	require.Equal(t, float32(612), media.Width())
	require.Equal(t, float32(792), media.Height())

	crop := mupdf.Rect{X0: 10, Y0: 10, X1: 200, Y1: 300}
	require.NoError(t, pp.SetCropBox(crop))
	got, err := pp.CropBox()
	require.NoError(t, err)
	require.InDelta(t, 190, got.Width(), 0.01)
	require.InDelta(t, 290, got.Height(), 0.01)
}

func TestPDFInsertDeletePageRange(t *testing.T) {
	c := newTestContext(t)

	pdf := openTestPDF(t, c, testpdf.WithPages(2))

	page, err := pdf.FindPage(0)
	require.NoError(t, err)
	defer page.Drop()

	require.ErrorContains(t, pdf.InsertPage(3, page), "page_no is not a valid page")
	require.ErrorContains(t, pdf.InsertPage(-1, page), "page_no is not a valid page")
	require.ErrorContains(t, pdf.DeletePage(2), "page_no is not a valid page")

	require.NoError(t, pdf.DeletePage(0))
	n, err := pdf.CountPages()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestPDFObjectGraph(t *testing.T) {
	c := newTestContext(t)

	pdf := openTestPDF(t, c, testpdf.Minimal())

	trailer, err := pdf.Trailer()
	require.NoError(t, err)
	defer trailer.Drop()

	isDict, err := trailer.IsDict()
	require.NoError(t, err)
	require.True(t, isDict)

	rootKey, err := mupdf.NewPDFName(c, "Root")
	require.NoError(t, err)
	defer rootKey.Drop()

	root, err := trailer.DictGet(rootKey)
	require.NoError(t, err)
	defer root.Drop()

	isInd, err := root.IsIndirect()
	require.NoError(t, err)
	require.True(t, isInd)

	catalog, err := root.Resolve()
	require.NoError(t, err)
	defer catalog.Drop()

	typeKey, err := mupdf.NewPDFName(c, "Type")
	require.NoError(t, err)
	defer typeKey.Drop()

	typ, err := catalog.DictGet(typeKey)
	require.NoError(t, err)
	defer typ.Drop()

	name, err := typ.Name()
	require.NoError(t, err)
	require.Equal(t, "Catalog", name)
}

func TestPDFObjectFromString(t *testing.T) {
	c := newTestContext(t)

	pdf := openTestPDF(t, c, testpdf.Minimal())

	obj, err := mupdf.PDFObjectFromString(c, pdf, "<< /Answer 42 /Words [ (one) (two) ] >>")
	require.NoError(t, err)
	defer obj.Drop()

	key, err := mupdf.NewPDFName(c, "Answer")
	require.NoError(t, err)
	defer key.Drop()

	answer, err := obj.DictGet(key)
	require.NoError(t, err)
	defer answer.Drop()

	v, err := answer.Int()
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	s, err := obj.String(true, false)
	require.NoError(t, err)
	require.Contains(t, s, "/Answer 42")
}

func TestPDFWriteObjectRequiresBinding(t *testing.T) {
	c := newTestContext(t)

	pdf := openTestPDF(t, c, testpdf.Minimal())

	// A freshly parsed dictionary is not an indirect object of the
	// xref, so writing through it must fail.
	obj, err := mupdf.PDFObjectFromString(c, pdf, "<< /A 1 >>")
	require.NoError(t, err)
	defer obj.Drop()

	replacement := mupdf.NewPDFNull(c)
	defer replacement.Drop()

	err = obj.WriteObject(replacement)
	require.ErrorContains(t, err, "object not bound to document")

	err = obj.WriteStreamBytes([]byte("data"), false)
	require.ErrorContains(t, err, "object not bound to document")
}

func TestPDFStreamRoundTrip(t *testing.T) {
	c := newTestContext(t)

	pdf := openTestPDF(t, c, testpdf.Minimal())

	stream, err := pdf.CreateObject()
	require.NoError(t, err)
	defer stream.Drop()

	dict, err := mupdf.PDFObjectFromString(c, pdf, "<< >>")
	require.NoError(t, err)
	defer dict.Drop()
	require.NoError(t, stream.WriteObject(dict))

	payload := []byte("q 1 0 0 1 0 0 cm Q")
	require.NoError(t, stream.WriteStreamBytes(payload, false))

	got, err := stream.ReadStream()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

// Saved files must open in independent PDF implementations, not just
// back in this library.
func TestPDFSaveValidatesExternally(t *testing.T) {
	c := newTestContext(t)

	pdf := openTestPDF(t, c, testpdf.WithPageTexts("alpha", "beta"))

	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, pdf.Save(path, mupdf.PDFWriteOptions{Compress: true}))

	require.NoError(t, api.ValidateFile(path, nil))

	data, err := pdf.Bytes(mupdf.PDFWriteOptions{})
	require.NoError(t, err)
	r, err := ledongthuc.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, 2, r.NumPage())
}

func TestPDFGraftPages(t *testing.T) {
	c := newTestContext(t)

	src := openTestPDF(t, c, testpdf.WithPageTexts("grafted"))
	dst, err := mupdf.NewPDFDocument(c)
	require.NoError(t, err)
	defer dst.Drop()

	gm, err := dst.NewGraftMap()
	require.NoError(t, err)
	defer gm.Drop()

	page, err := src.FindPage(0)
	require.NoError(t, err)
	defer page.Drop()

	copied, err := gm.GraftObject(page)
	require.NoError(t, err)
	defer copied.Drop()

	ref, err := dst.AddObject(copied)
	require.NoError(t, err)
	defer ref.Drop()

	require.NoError(t, dst.InsertPage(0, ref))
	n, err := dst.CountPages()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestPDFAnnotations(t *testing.T) {
	c := newTestContext(t)

	doc, err := mupdf.OpenDocumentFromBytes(c, testpdf.Minimal(), "pdf")
	require.NoError(t, err)
	defer doc.Drop()

	pg, err := doc.LoadPage(0)
	require.NoError(t, err)
	defer pg.Drop()

	pp, err := pg.PDFPage()
	require.NoError(t, err)
	defer pp.Drop()

	first, err := pp.FirstAnnot()
	require.NoError(t, err)
	require.Nil(t, first)

	annot, err := pp.CreateAnnotation(mupdf.AnnotText)
	require.NoError(t, err)
	defer annot.Drop()

	require.NoError(t, annot.SetAuthor("reviewer"))
	require.NoError(t, annot.SetContents("needs a citation"))
	require.NoError(t, annot.SetRect(mupdf.Rect{X0: 100, Y0: 100, X1: 120, Y1: 120}))

	author, err := annot.Author()
	require.NoError(t, err)
	require.Equal(t, "reviewer", author)

	kind, err := annot.Type()
	require.NoError(t, err)
	require.Equal(t, mupdf.AnnotText, kind)

	annots, err := pp.Annotations()
	require.NoError(t, err)
	require.Len(t, annots, 1)

	require.NoError(t, pp.DeleteAnnotation(annots[0]))
	left, err := pp.FirstAnnot()
	require.NoError(t, err)
	require.Nil(t, left)
}
