package mupdf_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

func TestBufferWriteAndRead(t *testing.T) {
	c := newTestContext(t)

	b, err := mupdf.NewBuffer(c, 16)
	require.NoError(t, err)
	defer b.Drop()

	n, err := b.Write([]byte("hello "))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	_, err = b.Write([]byte("world"))
	require.NoError(t, err)

	length, err := b.Len()
	require.NoError(t, err)
	require.Equal(t, 11, length)

	data, err := b.Bytes()
	require.NoError(t, err)
	require.Equal(t, "hello world", string(data))
}

func TestBufferReadAt(t *testing.T) {
	c := newTestContext(t)

	b, err := mupdf.NewBufferFromString(c, "hello world")
	require.NoError(t, err)
	defer b.Drop()

	p := make([]byte, 5)
	n, err := b.ReadAt(p, 6)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "world", string(p))

	// Short read at the tail reports io.EOF with the copied count.
	p = make([]byte, 8)
	n, err = b.ReadAt(p, 6)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 5, n)

	// Reading at the exact end is empty EOF, not an error.
	n, err = b.ReadAt(p, 11)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 0, n)
}

func TestBufferReadAtPastEnd(t *testing.T) {
	c := newTestContext(t)

	b, err := mupdf.NewBufferFromString(c, "short")
	require.NoError(t, err)
	defer b.Drop()

	_, err = b.ReadAt(make([]byte, 1), 6)
	require.Error(t, err)
	require.ErrorContains(t, err, "invalid offset, offset > buffer length")

	var me *mupdf.Error
	require.ErrorAs(t, err, &me)
}

func TestBufferFromBase64(t *testing.T) {
	c := newTestContext(t)

	b, err := mupdf.NewBufferFromBase64(c, "aGVsbG8=")
	require.NoError(t, err)
	defer b.Drop()

	data, err := b.Bytes()
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}

func TestBufferUseAfterDrop(t *testing.T) {
	c := newTestContext(t)

	b, err := mupdf.NewBufferFromString(c, "x")
	require.NoError(t, err)
	b.Drop()
	b.Drop() // idempotent

	_, err = b.Len()
	require.ErrorIs(t, err, mupdf.ErrClosed)
}
