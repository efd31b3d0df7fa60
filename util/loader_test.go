package util

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// writeImage encodes a solid red test image with the given encoder.
func writeImage(t *testing.T, path string, w, h int, encode func(f *os.File, img image.Image) error) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 255, 255
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f, img))
	require.NoError(t, f.Close())
}

func writePNG(t *testing.T, path string, w, h int) {
	writeImage(t, path, w, h, func(f *os.File, img image.Image) error { return png.Encode(f, img) })
}

func TestLoadSourceFilePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	writePNG(t, path, 64, 64)

	src, err := LoadSourceFile(path)
	require.NoError(t, err)
	assert.Equal(t, 64, src.Width)
	assert.Equal(t, 64, src.Height)
	require.Len(t, src.Pixels, 64*64*4)
	assert.EqualValues(t, 255, src.Pixels[0], "red channel should survive decoding")
	assert.EqualValues(t, 255, src.Pixels[3], "alpha channel should survive decoding")
}

func TestLoadSourceFileBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.bmp")
	writeImage(t, path, 32, 32, func(f *os.File, img image.Image) error { return bmp.Encode(f, img) })

	src, err := LoadSourceFile(path)
	require.NoError(t, err)
	assert.Equal(t, 32, src.Width)
	assert.Equal(t, 32, src.Height)
}

func TestLoadSourceFileNonSquare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	writePNG(t, path, 64, 32)

	src, err := LoadSourceFile(path)
	assert.Nil(t, src)

	var nonSquare *NonSquareImageError
	require.ErrorAs(t, err, &nonSquare)
	assert.Equal(t, path, nonSquare.Path)
	assert.Equal(t, 64, nonSquare.Width)
	assert.Equal(t, 32, nonSquare.Height)
}

func TestLoadSourceFileMissing(t *testing.T) {
	src, err := LoadSourceFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Nil(t, src)
	assert.Error(t, err)
}

func TestLoadSourceFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	src, err := LoadSourceFile(path)
	assert.Nil(t, src)
	assert.Error(t, err)
}

func TestLoadDirectorySources(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b-32.png"), 32, 32)
	writePNG(t, filepath.Join(dir, "a-16.png"), 16, 16)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	sources, err := LoadDirectorySources(dir)
	require.NoError(t, err)
	require.Len(t, sources, 2, "unsupported extensions are skipped")
	assert.Equal(t, 16, sources[0].Width, "files load in lexical order")
	assert.Equal(t, 32, sources[1].Width)
}

func TestLoadDirectorySourcesMissing(t *testing.T) {
	sources, err := LoadDirectorySources(filepath.Join(t.TempDir(), "nope"))
	assert.Nil(t, sources)
	assert.Error(t, err)
}
