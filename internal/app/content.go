package app

import "fmt"

// Document is the demo's scrollable content: a generated list of lines with
// a fixed line height, enough to need a scrollbar at any window size.
type Document struct {
	Lines      []string
	LineHeight float64
}

var sampleLines = []string{
	"The overlay scrollbar tracks this document as it scrolls.",
	"Grab the thumb on the right edge and drag it, or use the mouse wheel.",
	"In full selection mode, clicking anywhere on the track jumps there.",
	"Arrow keys, PageUp/PageDown, Home and End scroll from the keyboard.",
	"The bar fades out after a moment of inactivity and fades back in",
	"whenever the view scrolls or the pointer touches the thumb.",
	"",
}

// NewDocument builds a document of n numbered lines.
func NewDocument(n int, lineHeight float64) *Document {
	d := &Document{LineHeight: lineHeight}
	for i := 0; i < n; i++ {
		d.Lines = append(d.Lines, fmt.Sprintf("%4d  %s", i+1, sampleLines[i%len(sampleLines)]))
	}
	return d
}

// Height returns the total content height in pixels.
func (d *Document) Height() float64 {
	return float64(len(d.Lines)) * d.LineHeight
}

// VisibleRange returns the half-open line index range intersecting a
// viewport of viewHeight pixels scrolled to scrollY.
func (d *Document) VisibleRange(scrollY, viewHeight float64) (first, last int) {
	if d.LineHeight <= 0 || len(d.Lines) == 0 {
		return 0, 0
	}
	first = int(scrollY / d.LineHeight)
	if first < 0 {
		first = 0
	}
	last = int((scrollY+viewHeight)/d.LineHeight) + 1
	if last > len(d.Lines) {
		last = len(d.Lines)
	}
	if first > last {
		first = last
	}
	return first, last
}
