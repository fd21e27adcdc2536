package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/overscroll/internal/scrollbar"
)

// Scrollbar is the overlay widget along the right edge of a ScrollView.
// It owns the gesture controller, translates pixel mouse input into track
// fractions, and paints the track and thumb with a fade.
type Scrollbar struct {
	ctrl *scrollbar.Controller
	view *ScrollView
	fade Fade

	Thickness float64
	Padding   float64

	hovered  bool
	dragging bool
	lastY    int

	// Track rectangle from the last Update, used for hit tests and Draw.
	trackX, trackY float64
	trackW, trackH float64
}

// NewScrollbar builds the overlay widget over view. cfg controls the thumb
// minimum and the selection mode.
func NewScrollbar(cfg scrollbar.Config, view *ScrollView) (*Scrollbar, error) {
	ctrl, err := scrollbar.New(cfg, view)
	if err != nil {
		return nil, err
	}
	return &Scrollbar{
		ctrl:      ctrl,
		view:      view,
		Thickness: ScrollbarThickness,
		Padding:   ScrollbarPadding,
	}, nil
}

// Controller exposes the gesture controller, mainly for debug output.
func (sb *Scrollbar) Controller() *scrollbar.Controller {
	return sb.ctrl
}

// Selected reports whether the thumb is actively being dragged.
func (sb *Scrollbar) Selected() bool {
	return sb.ctrl.Selected()
}

// Update refreshes geometry and handles pointer input for one frame.
// (x, y, w, h) is the scrollable view's rectangle; the track occupies its
// right edge. Call from Update() after the view's wheel handling.
func (sb *Scrollbar) Update(x, y, w, h float64) {
	sb.trackX = x + w - sb.Thickness - sb.Padding
	sb.trackY = y + sb.Padding
	sb.trackW = sb.Thickness
	sb.trackH = h - sb.Padding*2

	sb.ctrl.Tick()
	g := sb.ctrl.Geometry()

	mx, my, down := MouseDown()

	thumbY := sb.trackY + g.Offset*sb.trackH
	thumbH := g.Size * sb.trackH
	sb.hovered = PointInRect(mx, my, sb.trackX, thumbY, sb.trackW, thumbH)

	if px, py, pressed := MouseJustPressed(); pressed {
		if PointInRect(px, py, sb.trackX, sb.trackY, sb.trackW, sb.trackH) && sb.trackH > 0 {
			sb.ctrl.PointerDown((float64(py) - sb.trackY) / sb.trackH)
			sb.dragging = sb.ctrl.Dragging()
			sb.lastY = py
		}
	}

	if sb.dragging {
		if down {
			if dy := my - sb.lastY; dy != 0 {
				sb.ctrl.DragDelta(float64(dy) / sb.trackH)
				sb.lastY = my
			}
		}
		if MouseJustReleased() || !down {
			sb.ctrl.DragEnd()
			sb.dragging = false
		}
	}

	sb.fade.Update(sb.ctrl.Selected() || sb.hovered || sb.view.ScrollInProgress())
}

// Draw paints the track and thumb at the position computed by Update.
func (sb *Scrollbar) Draw(dst *ebiten.Image) {
	if !sb.fade.Visible() {
		return
	}
	g := sb.ctrl.Geometry()
	// Nothing to scroll: the thumb would fill the track, so draw nothing.
	if g.SizeReal >= 1 {
		return
	}

	vector.DrawFilledRect(dst, float32(sb.trackX), float32(sb.trackY),
		float32(sb.trackW), float32(sb.trackH), withAlpha(ColorTrack, sb.fade.Alpha), false)

	thumbColor := ColorThumb
	if sb.ctrl.Selected() {
		thumbColor = ColorThumbActive
	} else if sb.hovered {
		thumbColor = ColorThumbHover
	}
	thumbY := sb.trackY + g.Offset*sb.trackH
	thumbH := g.Size * sb.trackH
	vector.DrawFilledRect(dst, float32(sb.trackX), float32(thumbY),
		float32(sb.trackW), float32(thumbH), withAlpha(thumbColor, sb.fade.Alpha), false)
}

// withAlpha scales a color's alpha for the fade.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
