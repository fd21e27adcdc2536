package ui

import "image/color"

// Colors — dark theme
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}

	ColorTrack       = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0x90}
	ColorThumb       = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xE0}
	ColorThumbHover  = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xF0}
	ColorThumbActive = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
)

// Layout constants
const (
	FontSizeTitle = 28
	FontSizeBody  = 16
	FontSizeSmall = 13

	ScreenWidth  = 1280
	ScreenHeight = 800

	ScrollAnimSpeed = 0.25
	FadeAnimSpeed   = 0.15

	// Defaults used when the config leaves the presentation values unset.
	ScrollbarThickness = 10.0
	ScrollbarPadding   = 4.0

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
)
