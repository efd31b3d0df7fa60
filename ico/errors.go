package ico

import "fmt"

// DuplicateSizeError reports two frames resolving to the same dimensions;
// the container directory cannot describe them unambiguously.
type DuplicateSizeError struct {
	// Size is the duplicated edge length in pixels.
	Size int
}

func (e *DuplicateSizeError) Error() string {
	return fmt.Sprintf("duplicate %dpx frame", e.Size)
}

// TooManyFramesError reports a frame count exceeding the 16-bit directory
// count field.
type TooManyFramesError struct {
	// Count is the offending frame count.
	Count int
}

func (e *TooManyFramesError) Error() string {
	return fmt.Sprintf("%d frames exceed the container limit of %d", e.Count, maxFrames)
}

// InvalidFrameSizeError reports an edge length the one-byte directory entry
// fields cannot represent.
type InvalidFrameSizeError struct {
	// Size is the offending edge length in pixels.
	Size int
}

func (e *InvalidFrameSizeError) Error() string {
	return fmt.Sprintf("frame size %dpx outside the representable range 1..%d", e.Size, maxEdge)
}
