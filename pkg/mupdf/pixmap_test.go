package mupdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

func TestPixmapBasics(t *testing.T) {
	c := newTestContext(t)

	rgb, err := mupdf.DeviceRGB(c)
	require.NoError(t, err)

	px, err := mupdf.NewPixmap(c, rgb, 0, 0, 40, 30, false)
	require.NoError(t, err)
	defer px.Drop()

	require.Equal(t, 40, px.Width())
	require.Equal(t, 30, px.Height())
	require.Equal(t, 3, px.NumComponents())
	require.False(t, px.Alpha())

	require.NoError(t, px.ClearWith(0xff))
	samples, err := px.Samples()
	require.NoError(t, err)
	require.Len(t, samples, px.Stride()*30)
	require.Equal(t, byte(0xff), samples[0])

	cs, err := px.ColorSpace()
	require.NoError(t, err)
	name, err := cs.Name()
	require.NoError(t, err)
	require.Equal(t, "DeviceRGB", name)
}

func TestPixmapGammaNeedsColorspace(t *testing.T) {
	c := newTestContext(t)

	// Alpha-only pixmap: no colorspace to run the gamma curve in.
	px, err := mupdf.NewPixmap(c, nil, 0, 0, 8, 8, true)
	require.NoError(t, err)
	defer px.Drop()

	err = px.Gamma(1.4)
	require.ErrorContains(t, err, "colorspace invalid for function")
}

func TestPixmapTintNeedsGrayOrRGB(t *testing.T) {
	c := newTestContext(t)

	cmyk, err := mupdf.DeviceCMYK(c)
	require.NoError(t, err)

	px, err := mupdf.NewPixmap(c, cmyk, 0, 0, 8, 8, false)
	require.NoError(t, err)
	defer px.Drop()

	err = px.Tint(0x000000, 0xffffff)
	require.ErrorContains(t, err, "colorspace invalid for function")

	rgb, err := mupdf.DeviceRGB(c)
	require.NoError(t, err)
	px2, err := mupdf.NewPixmap(c, rgb, 0, 0, 8, 8, false)
	require.NoError(t, err)
	defer px2.Drop()
	require.NoError(t, px2.ClearWith(0xff))
	require.NoError(t, px2.Tint(0x222222, 0xeeeeee))
}

func TestPixmapToImage(t *testing.T) {
	c := newTestContext(t)

	rgb, err := mupdf.DeviceRGB(c)
	require.NoError(t, err)

	px, err := mupdf.NewPixmap(c, rgb, 0, 0, 10, 10, false)
	require.NoError(t, err)
	defer px.Drop()
	require.NoError(t, px.ClearWith(0x80))

	img, err := px.RGBA()
	require.NoError(t, err)
	require.Equal(t, 10, img.Bounds().Dx())
	r, g, b, a := img.At(5, 5).RGBA()
	require.Equal(t, uint32(0x8080), r)
	require.Equal(t, r, g)
	require.Equal(t, g, b)
	require.Equal(t, uint32(0xffff), a)

	gray, err := mupdf.DeviceGray(c)
	require.NoError(t, err)
	gpx, err := mupdf.NewPixmap(c, gray, 0, 0, 4, 4, false)
	require.NoError(t, err)
	defer gpx.Drop()
	require.NoError(t, gpx.ClearWith(0x40))
	gimg, err := gpx.Gray()
	require.NoError(t, err)
	require.Equal(t, byte(0x40), gimg.Pix[0])

	// RGBA refuses non-RGB pixmaps.
	_, err = gpx.RGBA()
	require.Error(t, err)
}

func TestPixmapEncodePNG(t *testing.T) {
	c := newTestContext(t)

	rgb, err := mupdf.DeviceRGB(c)
	require.NoError(t, err)

	px, err := mupdf.NewPixmap(c, rgb, 0, 0, 16, 16, false)
	require.NoError(t, err)
	defer px.Drop()
	require.NoError(t, px.ClearWith(0xff))

	data, err := px.EncodeAs(mupdf.SavePNG)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
