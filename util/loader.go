// Package util - file decoding glue turning on-disk images into icon
// sources. The core packages never touch the filesystem or decode container
// bytes themselves.
package util

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	// Registered source decoders.
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"

	"github.com/nvr-ai/go-ico/images"
)

// NonSquareImageError reports a source file whose dimensions are not square.
// Icons are declared square at the container level, so lopsided sources are
// rejected at the file boundary.
type NonSquareImageError struct {
	// Path is the offending file.
	Path string
	// Width is the decoded width in pixels.
	Width int
	// Height is the decoded height in pixels.
	Height int
}

func (e *NonSquareImageError) Error() string {
	return fmt.Sprintf("image %s (%dx%d) is not a square", e.Path, e.Width, e.Height)
}

// LoadSourceFile decodes one image file into a source.
//
// Arguments:
// - path: Path to a PNG, JPEG, BMP or WebP file.
//
// Returns:
// - *images.Source: The decoded source with a straight RGBA buffer.
// - error: A wrapped open/decode error, or *NonSquareImageError.
func LoadSourceFile(path string) (*images.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening source image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}

	bounds := img.Bounds()
	if bounds.Dx() != bounds.Dy() {
		return nil, &NonSquareImageError{Path: path, Width: bounds.Dx(), Height: bounds.Dy()}
	}

	// Normalize to a straight RGBA buffer regardless of the decoded color
	// model.
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	return images.NewSource(nrgba.Pix, bounds.Dx(), bounds.Dy())
}

// LoadDirectorySources decodes every supported image file in a directory,
// in lexical filename order.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []*images.Source: One source per decodable file.
// - error: Error if reading the directory or decoding any file fails.
func LoadDirectorySources(dir string) ([]*images.Source, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading source directory")
	}

	var names []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		switch filepath.Ext(file.Name()) {
		case ".png", ".jpg", ".jpeg", ".bmp", ".webp":
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	sources := make([]*images.Source, 0, len(names))
	for _, name := range names {
		src, err := LoadSourceFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}
