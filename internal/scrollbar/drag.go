package scrollbar

// DragState holds the live drag offset and selection flag for one gesture.
// It is owned by the Controller and touched only from the update tick.
type DragState struct {
	offset   float64
	selected bool
}

// SetOffset stores value clamped to the thumb's valid travel range
// [0, 1-thumbSize]. Out-of-range inputs are silently clamped; there is no
// error path by design of the gesture loop.
func (d *DragState) SetOffset(value, thumbSize float64) {
	maxOffset := 1 - thumbSize
	if maxOffset < 0 {
		maxOffset = 0
	}
	d.offset = clamp(value, 0, maxOffset)
}

// Offset returns the last stored drag offset.
func (d *DragState) Offset() float64 {
	return d.offset
}

// SetSelected sets the selection flag. Visual consumers read it; no other
// side effects.
func (d *DragState) SetSelected(selected bool) {
	d.selected = selected
}

// Selected reports whether the thumb is actively pressed or dragged.
func (d *DragState) Selected() bool {
	return d.selected
}
