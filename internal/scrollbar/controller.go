package scrollbar

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a Controller is created with settings
// outside their valid range.
var ErrInvalidConfig = errors.New("invalid scrollbar config")

// DefaultThumbMinHeight is the fallback minimum thumb size when the config
// leaves it unset.
const DefaultThumbMinHeight = 0.1

// SelectionMode governs how a pointer-down on the track is interpreted.
type SelectionMode int

const (
	// SelectDisabled ignores pointer input entirely.
	SelectDisabled SelectionMode = iota
	// SelectThumb starts a drag only when the pointer lands on the thumb.
	SelectThumb
	// SelectFull additionally jumps to a click anywhere on the track.
	SelectFull
)

// Metrics is the host view's scroll state, reported once per tick.
// ScrollValue and MaxScrollValue are in the host's integer scroll units;
// VisibleSize is the viewport extent in the same axis.
type Metrics struct {
	ScrollValue    int
	MaxScrollValue int
	VisibleSize    float64
}

// Bridge is the host scroll contract. Metrics is pulled every tick;
// ScrollTo is fire-and-forget — the host clamps the value to its own range
// and reflects the result through later Metrics calls. A new ScrollTo
// supersedes any still-converging one.
type Bridge interface {
	Metrics() Metrics
	ScrollTo(value int)
}

// Geometry is the per-tick presentation output: thumb size and position as
// track fractions.
type Geometry struct {
	SizeReal float64 // visible/full fraction before the minimum floor
	Size     float64 // floored to the configured minimum
	Offset   float64 // thumb top, in [0, 1-Size]
}

// Config holds the interaction settings of a Controller.
type Config struct {
	// ThumbMinHeight is the smallest thumb size as a track fraction,
	// in [0,1]. Zero means DefaultThumbMinHeight.
	ThumbMinHeight float64
	SelectionMode  SelectionMode
}

// Controller is the drag/selection state machine for one overlay scrollbar.
// It converts pointer events on the track into drag state transitions and
// scroll requests against the Bridge. All methods must be called from the
// update tick; nothing here is safe for concurrent use.
type Controller struct {
	cfg    Config
	bridge Bridge

	drag     DragState
	dragging bool

	metrics  Metrics
	geometry Geometry
}

// New validates cfg and builds a Controller over the given bridge.
func New(cfg Config, bridge Bridge) (*Controller, error) {
	if cfg.ThumbMinHeight < 0 || cfg.ThumbMinHeight > 1 {
		return nil, fmt.Errorf("%w: thumb min height %v outside [0,1]", ErrInvalidConfig, cfg.ThumbMinHeight)
	}
	if cfg.ThumbMinHeight == 0 {
		cfg.ThumbMinHeight = DefaultThumbMinHeight
	}
	switch cfg.SelectionMode {
	case SelectDisabled, SelectThumb, SelectFull:
	default:
		return nil, fmt.Errorf("%w: unknown selection mode %d", ErrInvalidConfig, cfg.SelectionMode)
	}
	c := &Controller{cfg: cfg, bridge: bridge}
	c.Tick()
	return c, nil
}

// Tick pulls fresh metrics from the bridge and recomputes the thumb
// geometry. Call once per update frame, before handling pointer events.
func (c *Controller) Tick() {
	m := c.bridge.Metrics()
	// Host contract violations are clamped, not propagated: there is no
	// user-facing error to raise from inside a render tick.
	if m.MaxScrollValue < 0 {
		m.MaxScrollValue = 0
	}
	if m.ScrollValue < 0 {
		m.ScrollValue = 0
	}
	if m.ScrollValue > m.MaxScrollValue {
		m.ScrollValue = m.MaxScrollValue
	}
	if m.VisibleSize < 0 {
		m.VisibleSize = 0
	}
	c.metrics = m

	sizeReal := ThumbSizeReal(m.VisibleSize, m.MaxScrollValue)
	size := ThumbSize(sizeReal, c.cfg.ThumbMinHeight)
	c.geometry = Geometry{
		SizeReal: sizeReal,
		Size:     size,
		Offset:   OffsetPosition(m.ScrollValue, m.MaxScrollValue, size),
	}
}

// Geometry returns the thumb geometry computed by the last Tick.
func (c *Controller) Geometry() Geometry {
	return c.geometry
}

// Selected reports whether a drag gesture is holding the thumb.
func (c *Controller) Selected() bool {
	return c.drag.Selected()
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// PointerDown handles a press at trackFraction, the pointer position as a
// fraction of the track length. The thumb interval test is inclusive on
// both ends: a press exactly on the thumb's edge counts as inside.
func (c *Controller) PointerDown(trackFraction float64) {
	if c.cfg.SelectionMode == SelectDisabled {
		return
	}
	g := c.geometry
	onThumb := trackFraction >= g.Offset && trackFraction <= g.Offset+g.Size
	switch {
	case onThumb:
		// Grab in place: the drag continues from the thumb's current
		// position, wherever on the thumb the press landed.
		c.drag.SetOffset(g.Offset, g.Size)
		c.drag.SetSelected(true)
		c.dragging = true
	case c.cfg.SelectionMode == SelectFull:
		// Jump to the click, then keep dragging from there.
		c.requestScroll(trackFraction)
		c.drag.SetSelected(true)
		c.dragging = true
	}
}

// DragDelta handles pointer movement while dragging. delta is the movement
// since the previous event, as a fraction of the track length.
func (c *Controller) DragDelta(delta float64) {
	if !c.dragging || !c.drag.Selected() {
		return
	}
	c.requestScroll(c.drag.Offset() + delta)
}

// DragEnd releases the gesture. The drag offset keeps its last clamped
// value; the next programmatic scroll recomputes geometry independently.
func (c *Controller) DragEnd() {
	c.drag.SetSelected(false)
	c.dragging = false
}

// requestScroll stores fraction as the new drag offset and issues the
// matching scroll request. The offset is recomputed synchronously before
// dispatch so each request derives from its own event, never a stale one.
func (c *Controller) requestScroll(fraction float64) {
	c.drag.SetOffset(fraction, c.geometry.Size)
	exact := int(math.Floor(CorrectInverse(float64(c.metrics.MaxScrollValue)*c.drag.Offset(), c.geometry.Size)))
	// The host clamps too, but an inverse-corrected value can overshoot
	// the range before the host sees it.
	if exact < 0 {
		exact = 0
	}
	if exact > c.metrics.MaxScrollValue {
		exact = c.metrics.MaxScrollValue
	}
	c.bridge.ScrollTo(exact)
}
