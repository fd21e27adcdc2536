package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/overscroll/internal/config"
	"github.com/depeter/overscroll/internal/scrollbar"
	"github.com/depeter/overscroll/internal/ui"
)

const (
	headerHeight = 64.0
	contentPadX  = 40.0
	lineHeight   = 26.0
	demoLines    = 400
)

// Game is the demo application: a generated text document in a scroll view
// with the overlay scrollbar along its right edge.
type Game struct {
	Config        *config.Config
	Width, Height int

	doc  *Document
	view *ui.ScrollView
	bar  *ui.Scrollbar
}

// NewGame wires the document, scroll view and scrollbar from the config.
func NewGame(cfg *config.Config) (*Game, error) {
	g := &Game{
		Config: cfg,
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
	}
	g.doc = NewDocument(demoLines, lineHeight)
	g.view = &ui.ScrollView{
		ContentHeight: g.doc.Height(),
		ViewHeight:    float64(g.Height) - headerHeight,
	}

	mode, err := cfg.Scrollbar.Mode()
	if err != nil {
		return nil, err
	}
	bar, err := ui.NewScrollbar(scrollbar.Config{
		ThumbMinHeight: cfg.Scrollbar.ThumbMinHeight,
		SelectionMode:  mode,
	}, g.view)
	if err != nil {
		return nil, err
	}
	if cfg.Scrollbar.Thickness > 0 {
		bar.Thickness = cfg.Scrollbar.Thickness
	}
	bar.Padding = cfg.Scrollbar.Padding
	g.bar = bar
	return g, nil
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles the metrics overlay
	ToggleDebugOverlay()

	g.view.HandleMouseWheel()
	g.handleKeys()

	// The scrollbar consumes pointer input against the content area.
	g.bar.Update(0, headerHeight, float64(g.Width), g.view.ViewHeight)

	ui.UpdateInputState()
	return nil
}

func (g *Game) handleKeys() {
	page := g.view.ViewHeight * 0.9
	switch {
	case ui.KeyRepeating(ebiten.KeyArrowUp):
		g.view.ScrollBy(-lineHeight * 2)
	case ui.KeyRepeating(ebiten.KeyArrowDown):
		g.view.ScrollBy(lineHeight * 2)
	case ui.KeyRepeating(ebiten.KeyPageUp):
		g.view.ScrollBy(-page)
	case ui.KeyRepeating(ebiten.KeyPageDown):
		g.view.ScrollBy(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.view.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.view.ScrollTo(int(g.view.MaxScroll()))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Animate()

	screen.Fill(ui.ColorBackground)

	// Header
	ui.DrawText(screen, "overscroll demo", contentPadX, 18, ui.FontSizeTitle, ui.ColorPrimary)

	// Visible document lines, offset by the animated scroll position.
	first, last := g.doc.VisibleRange(g.view.ScrollY, g.view.ViewHeight)
	for i := first; i < last; i++ {
		y := headerHeight + float64(i)*g.doc.LineHeight - g.view.ScrollY
		ui.DrawText(screen, g.doc.Lines[i], contentPadX, y, ui.FontSizeBody, ui.ColorText)
	}

	g.bar.Draw(screen)
	g.drawDebugOverlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
