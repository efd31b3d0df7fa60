// Package images - source images, size selection, and resampling for icon
// frames. All pixel buffers are straight (non-premultiplied) RGBA, row-major,
// one byte per channel.
package images

// Source represents one decoded source image together with its native
// dimensions. A Source is immutable once created.
type Source struct {
	// Width is the native width of the image in pixels.
	Width int
	// Height is the native height of the image in pixels.
	Height int
	// Pixels is the straight RGBA pixel buffer, Width*Height*4 bytes.
	Pixels []byte
}

// Frame is one icon image resolved to an exact edge length, ready for
// encoding into a container. A Frame is produced by ResampleFrame and owns
// its buffer exclusively.
type Frame struct {
	// Size is the edge length in pixels; frames are square.
	Size int
	// Pixels is the straight RGBA pixel buffer, Size*Size*4 bytes.
	Pixels []byte
}

// NewSource validates dimensions and buffer length and wraps them into a
// Source.
//
// Arguments:
// - pixels: Straight RGBA pixel buffer, row-major.
// - width: Image width in pixels, must be positive.
// - height: Image height in pixels, must be positive.
//
// Returns:
// - *Source: The validated source image.
// - error: *InvalidImageError if the dimensions are not positive or the
//   buffer length does not equal width*height*4.
func NewSource(pixels []byte, width, height int) (*Source, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, &InvalidImageError{Width: width, Height: height, BufferLen: len(pixels)}
	}
	return &Source{Width: width, Height: height, Pixels: pixels}, nil
}
