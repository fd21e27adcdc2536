package scrollbar

// Pure offset math for the overlay scrollbar. Positions and sizes are
// normalized fractions of the track length; the host's scroll units only
// appear at the Bridge boundary.

// ThumbSizeReal returns the thumb size as the visible fraction of the full
// content extent. When there is no content at all the thumb fills the track.
func ThumbSizeReal(visibleSize float64, maxScrollValue int) float64 {
	fullSize := float64(maxScrollValue) + visibleSize
	if fullSize == 0 {
		return 1.0
	}
	return clamp(visibleSize/fullSize, 0, 1)
}

// ThumbSize applies the configured minimum so tiny content windows still
// produce a grabbable thumb.
func ThumbSize(sizeReal, minHeight float64) float64 {
	if sizeReal < minHeight {
		return minHeight
	}
	return sizeReal
}

// Correct maps a raw scroll fraction to the thumb-top fraction on the track.
// The thumb's own size eats into the travel range, so a fully scrolled view
// puts the thumb top at 1-thumbSize, not at 1.
func Correct(top, thumbSize float64) float64 {
	topMax := clamp(1-thumbSize, 0, 1)
	return top * topMax
}

// CorrectInverse maps a thumb-top fraction back to a raw scroll fraction.
// With a full-size thumb there is no travel range and the input passes
// through unchanged. Never returns a negative value.
func CorrectInverse(top, thumbSize float64) float64 {
	topMax := 1 - thumbSize
	if topMax == 0 {
		return top
	}
	v := top / topMax
	if v < 0 {
		return 0
	}
	return v
}

// OffsetPosition returns the thumb-top fraction for the given scroll value.
func OffsetPosition(scrollValue, maxScrollValue int, thumbSize float64) float64 {
	if maxScrollValue == 0 {
		return 0
	}
	return Correct(float64(scrollValue)/float64(maxScrollValue), thumbSize)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
