package scrollbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThumbSizeReal(t *testing.T) {
	tests := []struct {
		name        string
		visibleSize float64
		maxScroll   int
		want        float64
	}{
		{"half visible", 50, 100, 50.0 / 150.0},
		{"content fits", 600, 0, 1},
		{"no content at all", 0, 0, 1},
		{"tiny window", 10, 990, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThumbSizeReal(tt.visibleSize, tt.maxScroll)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestThumbSizeRealBounds(t *testing.T) {
	for _, visible := range []float64{1, 25, 480, 10000} {
		for _, maxScroll := range []int{0, 1, 99, 100000} {
			got := ThumbSizeReal(visible, maxScroll)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
			if maxScroll == 0 {
				assert.Equal(t, 1.0, got)
			}
		}
	}
}

func TestThumbSizeFloor(t *testing.T) {
	assert.Equal(t, 0.1, ThumbSize(0.003, 0.1))
	assert.Equal(t, 0.4, ThumbSize(0.4, 0.1))
	assert.Equal(t, 1.0, ThumbSize(1.0, 0.1))
}

func TestCorrectRoundTrip(t *testing.T) {
	// CorrectInverse(Correct(x, s), s) == x for every s < 1.
	for _, s := range []float64{0, 0.1, 1.0 / 3.0, 0.5, 0.9, 0.999} {
		for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
			assert.InDelta(t, x, CorrectInverse(Correct(x, s), s), 1e-9,
				"x=%v s=%v", x, s)
		}
	}
}

func TestCorrectFullThumb(t *testing.T) {
	// A full-size thumb has no travel range: Correct collapses to 0 and
	// CorrectInverse passes through.
	assert.Equal(t, 0.0, Correct(0.7, 1))
	assert.Equal(t, 0.7, CorrectInverse(0.7, 1))
}

func TestCorrectInverseNeverNegative(t *testing.T) {
	assert.Equal(t, 0.0, CorrectInverse(-0.3, 0.5))
	assert.Equal(t, 0.0, CorrectInverse(-1, 0))
}

func TestOffsetPosition(t *testing.T) {
	// maxScrollValue=100, visibleSize=50: thumb is 1/3, topMax is 2/3, so
	// scrollValue=50 puts the thumb top at 1/3.
	size := ThumbSize(ThumbSizeReal(50, 100), 0.1)
	assert.InDelta(t, 1.0/3.0, size, 1e-9)
	assert.InDelta(t, 1.0/3.0, OffsetPosition(50, 100, size), 1e-9)

	// Content fits: offset pinned to 0 no matter the scroll value.
	assert.Equal(t, 0.0, OffsetPosition(0, 0, 1))
	assert.Equal(t, 0.0, OffsetPosition(9999, 0, 1))
}

func TestOffsetPositionStaysInTrack(t *testing.T) {
	const maxScroll = 1000
	size := ThumbSize(ThumbSizeReal(400, maxScroll), 0.1)
	for v := 0; v <= maxScroll; v += 50 {
		pos := OffsetPosition(v, maxScroll, size)
		assert.GreaterOrEqual(t, pos, 0.0)
		assert.LessOrEqual(t, pos, 1-size+1e-9)
	}
}
