package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/overscroll/internal/ui"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the metrics overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// drawDebugOverlay shows the live scroll metrics and thumb geometry.
func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX  = 16.0
		padY  = 12.0
		lineH = 18.0
	)

	m := g.view.Metrics()
	geo := g.bar.Controller().Geometry()
	lines := []string{
		"Debug: Scroll State (F12 to close)",
		fmt.Sprintf("scrollValue=%d  maxScrollValue=%d  visibleSize=%.0f",
			m.ScrollValue, m.MaxScrollValue, m.VisibleSize),
		fmt.Sprintf("thumbSizeReal=%.4f  thumbSize=%.4f  offset=%.4f",
			geo.SizeReal, geo.Size, geo.Offset),
		fmt.Sprintf("selected=%v  dragging=%v  scrollInProgress=%v",
			g.bar.Selected(), g.bar.Controller().Dragging(), g.view.ScrollInProgress()),
		fmt.Sprintf("scrollY=%.1f  targetScrollY=%.1f", g.view.ScrollY, g.view.TargetScrollY),
	}

	panelW := 520.0
	panelH := float64(len(lines))*lineH + padY*2
	px := 20.0
	py := float64(g.Height) - panelH - 20

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ui.ColorOverlay, false)

	x := px + padX
	y := py + padY
	for i, line := range lines {
		clr := ui.ColorText
		if i == 0 {
			clr = ui.ColorPrimary
		}
		ui.DrawText(screen, line, x, y, ui.FontSizeSmall, clr)
		y += lineH
	}
}
