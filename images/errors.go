package images

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoSources is returned when selection is attempted against an empty
// source collection.
var ErrNoSources = errors.New("no source images")

// InvalidImageError reports a source whose dimensions or buffer length are
// inconsistent.
type InvalidImageError struct {
	// Width is the declared width in pixels.
	Width int
	// Height is the declared height in pixels.
	Height int
	// BufferLen is the actual pixel buffer length in bytes.
	BufferLen int
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid source image: %dx%d with %d-byte buffer (want %d bytes)",
		e.Width, e.Height, e.BufferLen, e.Width*e.Height*4)
}

// ResampleError reports a target size whose output buffer cannot be
// allocated. Normal scaling never fails.
type ResampleError struct {
	// Size is the requested edge length in pixels.
	Size int
}

func (e *ResampleError) Error() string {
	return fmt.Sprintf("cannot resample to %dpx: output buffer size overflows", e.Size)
}
