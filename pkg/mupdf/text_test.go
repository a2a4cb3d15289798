package mupdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

func TestFontAndText(t *testing.T) {
	c := newTestContext(t)

	font, err := mupdf.NewFont(c, "Helvetica", 0)
	require.NoError(t, err)
	defer font.Drop()

	name, err := font.Name()
	require.NoError(t, err)
	require.NotEmpty(t, name)

	glyph, err := font.EncodeCharacter('A')
	require.NoError(t, err)
	require.NotZero(t, glyph)

	adv, err := font.AdvanceGlyph(glyph, false)
	require.NoError(t, err)
	require.Greater(t, adv, float32(0))

	outline, err := font.OutlineGlyph(glyph, mupdf.Scale(12, 12))
	require.NoError(t, err)
	defer outline.Drop()
	bounds, err := outline.Bounds(nil, mupdf.Identity)
	require.NoError(t, err)
	require.False(t, bounds.IsEmpty())
}

func TestTextShowString(t *testing.T) {
	c := newTestContext(t)

	font, err := mupdf.NewFont(c, "Helvetica", 0)
	require.NoError(t, err)
	defer font.Drop()

	text, err := mupdf.NewText(c)
	require.NoError(t, err)
	defer text.Drop()

	start := mupdf.Scale(12, 12)
	end, err := text.ShowString(font, start, "measure me", mupdf.TextOptions{})
	require.NoError(t, err)
	require.Greater(t, end.E, start.E, "pen must advance")

	bounds, err := text.Bounds(nil, mupdf.Identity)
	require.NoError(t, err)
	require.False(t, bounds.IsEmpty())
}

func TestTextLanguageTags(t *testing.T) {
	c := newTestContext(t)

	font, err := mupdf.NewFont(c, "Helvetica", 0)
	require.NoError(t, err)
	defer font.Drop()

	text, err := mupdf.NewText(c)
	require.NoError(t, err)
	defer text.Drop()

	_, err = text.ShowString(font, mupdf.Scale(10, 10), "bonjour", mupdf.TextOptions{
		Language: language.French,
	})
	require.NoError(t, err)

	// A private-use tag has no usable base language.
	bad, parseErr := language.Parse("x-klingon")
	if parseErr == nil {
		_, err = text.ShowString(font, mupdf.Scale(10, 10), "qapla'", mupdf.TextOptions{
			Language: bad,
		})
		require.ErrorIs(t, err, mupdf.ErrInvalidLanguage)
	}
}
