package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentHeight(t *testing.T) {
	d := NewDocument(100, 26)
	assert.Equal(t, 2600.0, d.Height())
	assert.Len(t, d.Lines, 100)
}

func TestVisibleRange(t *testing.T) {
	d := NewDocument(100, 20)

	first, last := d.VisibleRange(0, 200)
	assert.Equal(t, 0, first)
	assert.Equal(t, 11, last) // one line of overdraw past the viewport

	first, last = d.VisibleRange(205, 200)
	assert.Equal(t, 10, first)
	assert.Equal(t, 21, last)

	// Bottom of the document.
	first, last = d.VisibleRange(1800, 200)
	assert.Equal(t, 90, first)
	assert.Equal(t, 100, last)

	// Scrolled past the end: empty range, no panic.
	first, last = d.VisibleRange(5000, 200)
	assert.Equal(t, 100, first)
	assert.Equal(t, 100, last)
}

func TestVisibleRangeEmptyDocument(t *testing.T) {
	d := &Document{LineHeight: 20}
	first, last := d.VisibleRange(0, 200)
	assert.Equal(t, 0, first)
	assert.Equal(t, 0, last)
}
