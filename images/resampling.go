package images

import (
	"image"
	"math"

	"github.com/chewxy/math32"
	"github.com/nfnt/resize"
)

// ResampleFrame produces a square frame of exactly target*target pixels from
// the given source. When the source already has the target dimensions its
// buffer is copied verbatim, so exact matches never pick up interpolation
// artifacts. Otherwise the source is interpolated with the given filter over
// a premultiplied-alpha intermediate, which keeps fully transparent pixels
// from bleeding color into their neighbors.
//
// Arguments:
// - src: The chosen source image.
// - target: The requested edge length in pixels.
// - filter: The interpolation filter, e.g. resize.Lanczos3.
//
// Returns:
// - *Frame: A frame owning an independent target*target*4 byte buffer.
// - error: *ResampleError if the output buffer size overflows; normal
//   scaling never fails.
func ResampleFrame(src *Source, target int, filter resize.InterpolationFunction) (*Frame, error) {
	if target <= 0 || uint64(target)*uint64(target)*4 > math.MaxInt32 {
		return nil, &ResampleError{Size: target}
	}

	if src.Width == target && src.Height == target {
		return &Frame{Size: target, Pixels: append([]byte(nil), src.Pixels...)}, nil
	}

	resized := resize.Resize(uint(target), uint(target), premultiply(src), filter)

	pixels := make([]byte, target*target*4)
	for y := 0; y < target; y++ {
		for x := 0; x < target; x++ {
			r, g, b, a := resized.At(x, y).RGBA()
			i := (y*target + x) * 4
			pixels[i] = unpremultiply(r, a)
			pixels[i+1] = unpremultiply(g, a)
			pixels[i+2] = unpremultiply(b, a)
			pixels[i+3] = uint8(a >> 8)
		}
	}
	return &Frame{Size: target, Pixels: pixels}, nil
}

// premultiply converts a straight-alpha source buffer into a premultiplied
// image.RGBA suitable for interpolation.
func premultiply(src *Source) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, src.Width, src.Height))
	for i := 0; i < len(src.Pixels); i += 4 {
		a := uint32(src.Pixels[i+3])
		out.Pix[i] = uint8((uint32(src.Pixels[i])*a + 127) / 255)
		out.Pix[i+1] = uint8((uint32(src.Pixels[i+1])*a + 127) / 255)
		out.Pix[i+2] = uint8((uint32(src.Pixels[i+2])*a + 127) / 255)
		out.Pix[i+3] = uint8(a)
	}
	return out
}

// unpremultiply recovers one straight 8-bit channel value from 16-bit
// premultiplied color and alpha.
func unpremultiply(c, a uint32) uint8 {
	if a == 0 {
		return 0
	}
	v := math32.Round(float32(c) / float32(a) * 255)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
