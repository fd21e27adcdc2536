package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseJustPressed returns the cursor position and whether the left mouse
// button was pressed this frame.
func MouseJustPressed() (x, y int, pressed bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		pressed = true
	}
	return
}

// MouseJustReleased reports whether the left mouse button was released this
// frame.
func MouseJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// MouseDown returns the cursor position and whether the left mouse button is
// currently held.
func MouseDown() (x, y int, down bool) {
	x, y = ebiten.CursorPosition()
	down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	// Update per-key hold frames
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

// KeyRepeating reports a press on the first frame a key goes down and then
// again at the repeat interval while it stays held.
func KeyRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	// Key held — check repeat timing
	if frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0 {
		return true
	}
	return false
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
