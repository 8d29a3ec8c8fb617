package main

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compressGzip(t *testing.T, name, comment string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	wr, err := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
	require.NoError(t, err)
	wr.Name = name
	wr.Comment = comment
	_, err = wr.Write(data)
	require.NoError(t, err)
	require.NoError(t, wr.Close())
	return buf.Bytes()
}

func TestGunzipRoundTrip(t *testing.T) {
	want := []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly")
	vectors := []struct {
		name, comment string
	}{
		{"", ""},
		{"fixture.txt", ""},
		{"", "a comment"},
		{"fixture.txt", "a comment"},
	}
	for _, v := range vectors {
		archive := compressGzip(t, v.name, v.comment, want)
		got, err := gunzip(archive)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestGunzipBadMagic(t *testing.T) {
	_, err := gunzip(make([]byte, 20))
	assert.Error(t, err)
}

func TestGunzipTooShort(t *testing.T) {
	_, err := gunzip([]byte{0x1f, 0x8b})
	assert.Error(t, err)
}

func TestDecompressedPath(t *testing.T) {
	assert.Equal(t, "foo", decompressedPath("foo.gz"))
	assert.Equal(t, "foo.txt.decompressed", decompressedPath("foo.txt"))
}
