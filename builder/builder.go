// Package builder assembles multi-resolution ICO containers from a set of
// independently supplied source images.
package builder

import (
	"os"
	"sort"
	"sync"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-ico/ico"
	"github.com/nvr-ai/go-ico/images"
	"github.com/nvr-ai/go-ico/util"
)

// DefaultSizes is the minimal recommended icon size set.
//
// See:
// https://learn.microsoft.com/en-us/windows/apps/design/style/iconography/app-icon-construction#icon-scaling
var DefaultSizes = []int{16, 24, 32, 48, 256}

// Builder accumulates source images and target sizes, then assembles them
// into a single ICO byte stream. For each target size the closest source is
// resampled to the exact dimension. Building is idempotent: repeated Build
// calls with unchanged configuration produce byte-identical output, and no
// partial output is ever emitted on error.
type Builder struct {
	sizes   []int
	filter  resize.InterpolationFunction
	sources []*images.Source
}

// New returns a Builder configured with DefaultSizes and Lanczos3 scaling.
func New() *Builder {
	return &Builder{
		sizes:  append([]int(nil), DefaultSizes...),
		filter: resize.Lanczos3,
	}
}

// Sizes replaces the target size set. Sizes are resolved in ascending order
// regardless of the order given here.
func (b *Builder) Sizes(sizes ...int) *Builder {
	b.sizes = append([]int(nil), sizes...)
	return b
}

// Filter replaces the interpolation filter used when a source has to be
// scaled. Defaults to resize.Lanczos3.
func (b *Builder) Filter(filter resize.InterpolationFunction) *Builder {
	b.filter = filter
	return b
}

// AddSource appends one decoded source image to the collection. On selection
// ties the most recently added source wins, so later calls override earlier
// ones.
//
// Arguments:
// - pixels: Straight RGBA pixel buffer, row-major, width*height*4 bytes.
// - width: Source width in pixels.
// - height: Source height in pixels.
//
// Returns:
// - error: *images.InvalidImageError if the dimensions or buffer length are
//   inconsistent.
func (b *Builder) AddSource(pixels []byte, width, height int) error {
	src, err := images.NewSource(pixels, width, height)
	if err != nil {
		return err
	}
	b.sources = append(b.sources, src)
	return nil
}

// AddSourceFile decodes one image file (PNG, JPEG, BMP or WebP) and appends
// it as a source.
func (b *Builder) AddSourceFile(path string) error {
	src, err := util.LoadSourceFile(path)
	if err != nil {
		return err
	}
	b.sources = append(b.sources, src)
	return nil
}

// AddSourceFiles decodes several image files in order. See: AddSourceFile.
func (b *Builder) AddSourceFiles(paths ...string) error {
	for _, path := range paths {
		if err := b.AddSourceFile(path); err != nil {
			return err
		}
	}
	return nil
}

// Build resolves one frame per configured target size and serializes the
// result. Frames are resampled concurrently, one goroutine per size, and
// collected by index, so the output bytes do not depend on scheduling.
//
// Returns:
// - []byte: The complete container.
// - error: The first failure from selection, resampling or encoding;
//   images.ErrNoSources when no sources were added.
func (b *Builder) Build() ([]byte, error) {
	if len(b.sources) == 0 {
		return nil, images.ErrNoSources
	}

	sizes := append([]int(nil), b.sizes...)
	sort.Ints(sizes)
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}

	frames := make([]*images.Frame, len(sizes))
	errs := make([]error, len(sizes))
	var wg sync.WaitGroup
	for i, size := range sizes {
		wg.Add(1)
		go func(i, size int) {
			defer wg.Done()
			src, err := images.SelectSource(b.sources, size)
			if err != nil {
				errs[i] = err
				return
			}
			frame, err := images.ResampleFrame(src, size, b.filter)
			if err != nil {
				errs[i] = errors.Wrapf(err, "resolving %dpx frame", size)
				return
			}
			frames[i] = frame
		}(i, size)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ico.Encode(frames)
}

// BuildFile builds the container in memory and writes it to path. Assembly
// happens entirely before the write, so a failed build leaves no file
// behind.
func (b *Builder) BuildFile(path string) error {
	data, err := b.Build()
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing %s", path)
}

// validateSizes rejects sizes the directory entries cannot represent and
// duplicate targets before any resampling work happens. Expects sorted
// input.
func validateSizes(sizes []int) error {
	for i, size := range sizes {
		if size < 1 || size > 256 {
			return &ico.InvalidFrameSizeError{Size: size}
		}
		if i > 0 && sizes[i-1] == size {
			return &ico.DuplicateSizeError{Size: size}
		}
	}
	return nil
}
