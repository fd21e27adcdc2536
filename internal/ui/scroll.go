package ui

import (
	"math"

	"github.com/depeter/overscroll/internal/scrollbar"
)

// ScrollView provides vertical scroll tracking for a content area with
// smooth animation. It is the host side of the scrollbar contract: the
// controller pulls Metrics every tick and pushes ScrollTo requests, which
// land in TargetScrollY and converge over the following draw ticks.
type ScrollView struct {
	ScrollY       float64
	TargetScrollY float64
	ContentHeight float64
	ViewHeight    float64
}

// MaxScroll returns the scrollable range in pixels, never negative.
func (v *ScrollView) MaxScroll() float64 {
	m := v.ContentHeight - v.ViewHeight
	if m < 0 {
		return 0
	}
	return m
}

// Metrics reports the current scroll state in integer pixel units.
func (v *ScrollView) Metrics() scrollbar.Metrics {
	return scrollbar.Metrics{
		ScrollValue:    int(math.Round(v.ScrollY)),
		MaxScrollValue: int(math.Round(v.MaxScroll())),
		VisibleSize:    v.ViewHeight,
	}
}

// ScrollTo requests an absolute scroll position. The value is clamped to
// the valid range; the view converges to it over subsequent Animate calls.
// A later request simply replaces the target.
func (v *ScrollView) ScrollTo(value int) {
	v.TargetScrollY = clamp(float64(value), 0, v.MaxScroll())
}

// ScrollBy moves the target by dy pixels, clamped to the valid range.
func (v *ScrollView) ScrollBy(dy float64) {
	v.TargetScrollY = clamp(v.TargetScrollY+dy, 0, v.MaxScroll())
}

// HandleMouseWheel updates the target scroll position from mouse wheel
// input. Call this from Update().
func (v *ScrollView) HandleMouseWheel() {
	_, wy := MouseWheelDelta()
	if wy != 0 {
		v.ScrollBy(-wy * ScrollWheelSpeed)
	}
}

// Animate performs smooth scroll interpolation. Call this from Draw().
func (v *ScrollView) Animate() {
	v.ScrollY = Lerp(v.ScrollY, v.TargetScrollY, ScrollAnimSpeed)
	// Snap once the remaining distance is under a pixel so the scroll
	// settles instead of converging forever.
	if math.Abs(v.TargetScrollY-v.ScrollY) < 0.5 {
		v.ScrollY = v.TargetScrollY
	}
}

// ScrollInProgress reports whether the view is still converging on its
// target. The overlay fade layer keeps the scrollbar visible while true.
func (v *ScrollView) ScrollInProgress() bool {
	return math.Abs(v.TargetScrollY-v.ScrollY) >= 0.5
}

// SetContentHeight updates the content extent and re-clamps the scroll
// position, e.g. after the document changes.
func (v *ScrollView) SetContentHeight(h float64) {
	v.ContentHeight = h
	v.TargetScrollY = clamp(v.TargetScrollY, 0, v.MaxScroll())
	v.ScrollY = clamp(v.ScrollY, 0, v.MaxScroll())
}

// SetViewHeight updates the viewport extent, e.g. after a window resize.
func (v *ScrollView) SetViewHeight(h float64) {
	v.ViewHeight = h
	v.TargetScrollY = clamp(v.TargetScrollY, 0, v.MaxScroll())
	v.ScrollY = clamp(v.ScrollY, 0, v.MaxScroll())
}

// Reset sets scroll position back to top.
func (v *ScrollView) Reset() {
	v.ScrollY = 0
	v.TargetScrollY = 0
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
