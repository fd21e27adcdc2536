package ui

import "time"

// FadeHold is how long the overlay stays fully visible after the last
// activity before fading out.
const FadeHold = 1200 * time.Millisecond

// Fade drives the overlay scrollbar's visibility. It holds full alpha
// while active (selected, hovered, or scroll in progress) and for FadeHold
// after, then eases out. Purely presentational; it never gates gesture
// handling.
type Fade struct {
	Alpha     float64
	holdUntil time.Time
}

// Update advances the fade one tick. active extends the hold deadline.
func (f *Fade) Update(active bool) {
	now := time.Now()
	if active {
		f.holdUntil = now.Add(FadeHold)
	}
	target := 0.0
	if active || now.Before(f.holdUntil) {
		target = 1.0
	}
	f.Alpha = Lerp(f.Alpha, target, FadeAnimSpeed)
	// Settle at the endpoints so Visible flips cleanly.
	if target == 0 && f.Alpha < 0.01 {
		f.Alpha = 0
	}
	if target == 1 && f.Alpha > 0.99 {
		f.Alpha = 1
	}
}

// Visible reports whether there is anything worth drawing.
func (f *Fade) Visible() bool {
	return f.Alpha > 0
}
