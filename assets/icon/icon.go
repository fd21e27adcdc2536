package icon

import (
	"image"
	"image/color"
)

// Theme colors from the app
var (
	darkBG    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	textLine  = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	trackCol  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	thumbBlue = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws the app motif: a document of faint text lines with an
// overlay scrollbar thumb on the right edge.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.12, darkBG)

	// Text lines, alternating long and short
	lineH := s * 0.06
	gap := s * 0.14
	y := s * 0.14
	for i := 0; y+lineH < s*0.90; i++ {
		w := s * 0.56
		if i%2 == 1 {
			w = s * 0.42
		}
		fillRoundedRect(img, s*0.12, y, w, lineH, lineH/2, textLine)
		y += gap
	}

	// Track along the right edge
	trackX := s * 0.80
	trackW := s * 0.10
	fillRoundedRect(img, trackX, s*0.10, trackW, s*0.80, trackW/2, trackCol)

	// Thumb in the upper third of the track
	fillRoundedRect(img, trackX, s*0.16, trackW, s*0.30, trackW/2, thumbBlue)

	return img
}

// fillRoundedRect fills a rounded rectangle, testing each pixel against the
// corner circles.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.RGBA) {
	bounds := img.Bounds()
	for y := int(yf); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := int(xf); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			if insideRounded(float64(x), float64(y), xf, yf, wf, hf, r) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func insideRounded(fx, fy, xf, yf, wf, hf, r float64) bool {
	// Nearest corner center, if the point is in a corner region
	cx, cy := fx, fy
	switch {
	case fx < xf+r && fy < yf+r:
		cx, cy = xf+r, yf+r
	case fx > xf+wf-r && fy < yf+r:
		cx, cy = xf+wf-r, yf+r
	case fx < xf+r && fy > yf+hf-r:
		cx, cy = xf+r, yf+hf-r
	case fx > xf+wf-r && fy > yf+hf-r:
		cx, cy = xf+wf-r, yf+hf-r
	default:
		return true
	}
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy <= r*r
}
