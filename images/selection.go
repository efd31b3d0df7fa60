package images

// SelectSource picks the best source image for one target edge length. The
// policy prefers an exact width match, then the smallest source wider than
// the target (downscaling preserves more detail than upscaling), and only
// upscales the largest available source when nothing wider exists. Ties are
// broken in favor of the most recently added source, so later additions
// override earlier ones.
//
// Arguments:
// - sources: The ordered source collection, oldest first.
// - target: The requested edge length in pixels.
//
// Returns:
// - *Source: The chosen source image.
// - error: ErrNoSources if the collection is empty.
func SelectSource(sources []*Source, target int) (*Source, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	for i := len(sources) - 1; i >= 0; i-- {
		if sources[i].Width == target {
			return sources[i], nil
		}
	}

	// Smallest source wider than the target; >= keeps the later source on
	// equal widths.
	var down *Source
	for _, s := range sources {
		if s.Width > target && (down == nil || down.Width >= s.Width) {
			down = s
		}
	}
	if down != nil {
		return down, nil
	}

	// Everything is smaller than the target; upscale the largest.
	up := sources[0]
	for _, s := range sources[1:] {
		if s.Width >= up.Width {
			up = s
		}
	}
	return up, nil
}
