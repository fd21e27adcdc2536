package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollViewMetrics(t *testing.T) {
	v := &ScrollView{ContentHeight: 2000, ViewHeight: 600}
	m := v.Metrics()
	assert.Equal(t, 0, m.ScrollValue)
	assert.Equal(t, 1400, m.MaxScrollValue)
	assert.Equal(t, 600.0, m.VisibleSize)

	v.ScrollY = 350.4
	assert.Equal(t, 350, v.Metrics().ScrollValue)
}

func TestScrollViewMetricsContentFits(t *testing.T) {
	v := &ScrollView{ContentHeight: 300, ViewHeight: 600}
	m := v.Metrics()
	assert.Equal(t, 0, m.MaxScrollValue)
}

func TestScrollViewScrollToClamps(t *testing.T) {
	v := &ScrollView{ContentHeight: 2000, ViewHeight: 600}

	v.ScrollTo(5000)
	assert.Equal(t, 1400.0, v.TargetScrollY)

	v.ScrollTo(-50)
	assert.Equal(t, 0.0, v.TargetScrollY)

	// Later request replaces the target.
	v.ScrollTo(700)
	v.ScrollTo(100)
	assert.Equal(t, 100.0, v.TargetScrollY)
}

func TestScrollViewAnimateConverges(t *testing.T) {
	v := &ScrollView{ContentHeight: 2000, ViewHeight: 600}
	v.ScrollTo(1000)
	assert.True(t, v.ScrollInProgress())

	for i := 0; i < 120 && v.ScrollInProgress(); i++ {
		v.Animate()
	}
	assert.False(t, v.ScrollInProgress())
	assert.Equal(t, 1000.0, v.ScrollY)
}

func TestScrollViewResizeReclamps(t *testing.T) {
	v := &ScrollView{ContentHeight: 2000, ViewHeight: 600}
	v.ScrollTo(1400)
	v.ScrollY = 1400

	// Content shrinks below the current position.
	v.SetContentHeight(800)
	assert.Equal(t, 200.0, v.TargetScrollY)
	assert.Equal(t, 200.0, v.ScrollY)

	// Viewport grows until nothing is scrollable.
	v.SetViewHeight(900)
	assert.Equal(t, 0.0, v.TargetScrollY)
	assert.Equal(t, 0.0, v.ScrollY)
}

func TestScrollViewReset(t *testing.T) {
	v := &ScrollView{ContentHeight: 2000, ViewHeight: 600, ScrollY: 500, TargetScrollY: 700}
	v.Reset()
	assert.Equal(t, 0.0, v.ScrollY)
	assert.Equal(t, 0.0, v.TargetScrollY)
}

func TestFadeRisesWhileActive(t *testing.T) {
	var f Fade
	assert.False(t, f.Visible())

	f.Update(true)
	assert.True(t, f.Visible())
	for i := 0; i < 200; i++ {
		f.Update(true)
	}
	assert.Equal(t, 1.0, f.Alpha)

	// Inactivity keeps full alpha through the hold period.
	f.Update(false)
	assert.Equal(t, 1.0, f.Alpha)
}
