package mupdf_test

import (
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/require"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

func TestDocumentWriterProducesValidPDF(t *testing.T) {
	c := newTestContext(t)

	path := filepath.Join(t.TempDir(), "written.pdf")
	w, err := mupdf.NewDocumentWriter(c, path, "pdf", "")
	require.NoError(t, err)
	defer w.Drop()

	rgb, err := mupdf.DeviceRGB(c)
	require.NoError(t, err)

	mediabox := mupdf.Rect{X1: 612, Y1: 792}
	for i := 0; i < 2; i++ {
		dev, err := w.BeginPage(mediabox)
		require.NoError(t, err)

		p, err := mupdf.NewPath(c)
		require.NoError(t, err)
		require.NoError(t, p.Rect(72, 72, 300, 200))
		err = dev.FillPath(p, false, mupdf.Identity, rgb,
			[]float32{0.2, 0.4, 0.8}, 1, mupdf.DefaultColorParams)
		require.NoError(t, err)
		p.Drop()

		require.NoError(t, w.EndPage())

		// The page device is writer-owned; it is dead after EndPage.
		err = dev.PopClip()
		require.ErrorIs(t, err, mupdf.ErrClosed)
	}

	require.NoError(t, w.Close())
	w.Drop()

	require.NoError(t, api.ValidateFile(path, nil))

	doc, err := mupdf.OpenDocument(c, path)
	require.NoError(t, err)
	defer doc.Drop()
	n, err := doc.PageCount()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestDrawDeviceFillsPixels(t *testing.T) {
	c := newTestContext(t)

	rgb, err := mupdf.DeviceRGB(c)
	require.NoError(t, err)

	px, err := mupdf.NewPixmap(c, rgb, 0, 0, 50, 50, false)
	require.NoError(t, err)
	defer px.Drop()
	require.NoError(t, px.ClearWith(0xff))

	dev, err := mupdf.NewDrawDevice(c, px, mupdf.InfiniteIRect)
	require.NoError(t, err)
	defer dev.Drop()

	p, err := mupdf.NewPath(c)
	require.NoError(t, err)
	defer p.Drop()
	require.NoError(t, p.Rect(10, 10, 40, 40))

	err = dev.FillPath(p, false, mupdf.Identity, rgb,
		[]float32{1, 0, 0}, 1, mupdf.DefaultColorParams)
	require.NoError(t, err)
	require.NoError(t, dev.Close())

	img, err := px.RGBA()
	require.NoError(t, err)
	r, g, b, _ := img.At(25, 25).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0), g)
	require.Equal(t, uint32(0), b)

	// Outside the rect stays white.
	r, g, b, _ = img.At(2, 2).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0xffff), g)
	require.Equal(t, uint32(0xffff), b)
}

func TestDisplayListDeviceRecords(t *testing.T) {
	c := newTestContext(t)

	dl, err := mupdf.NewDisplayList(c, mupdf.Rect{X1: 100, Y1: 100})
	require.NoError(t, err)
	defer dl.Drop()

	dev, err := mupdf.NewDisplayListDevice(c, dl)
	require.NoError(t, err)
	defer dev.Drop()

	rgb, err := mupdf.DeviceRGB(c)
	require.NoError(t, err)

	p, err := mupdf.NewPath(c)
	require.NoError(t, err)
	defer p.Drop()
	require.NoError(t, p.Rect(0, 0, 100, 100))
	require.NoError(t, dev.FillPath(p, false, mupdf.Identity, rgb,
		[]float32{0, 0, 0}, 1, mupdf.DefaultColorParams))
	require.NoError(t, dev.Close())

	px, err := dl.ToPixmap(mupdf.Identity, rgb, false)
	require.NoError(t, err)
	defer px.Drop()
	samples, err := px.Samples()
	require.NoError(t, err)
	require.Equal(t, byte(0), samples[0])
}
