//go:build ebiten

package app

import (
	"fmt"

	"hudedit/internal/hud"
	"hudedit/internal/render"
	"hudedit/internal/store"
	"hudedit/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the HUD editor to the ebiten.Game interface.
type Game struct {
	cfg      *Config
	renderer *render.Renderer
	gui      *hud.Gui
	huds     *hud.Controller
	overlay  *ui.Overlay

	lastX, lastY int
}

// New constructs a Game whose elements start from the saved state.
func New(cfg *Config, state hud.State) *Game {
	r := render.NewRenderer(cfg.Width, cfg.Height)
	gui := hud.NewGui()
	huds := hud.NewWithSurface(state, gui, r, input{}, cfg.Background)
	return &Game{
		cfg:      cfg,
		renderer: r,
		gui:      gui,
		huds:     huds,
		overlay:  ui.NewOverlay(huds, r),
	}
}

// Save syncs element geometry into the state and writes it to disk.
func (g *Game) Save() error {
	if err := store.Save(g.cfg.StatePath, g.huds.Save().State()); err != nil {
		return fmt.Errorf("save huds: %w", err)
	}
	return nil
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !g.huds.IsOpen() {
			return ebiten.Termination
		}
		g.huds.Close()
		if err := g.Save(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && !g.huds.IsOpen() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) && !g.huds.IsOpen() {
		g.huds.Open()
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			g.gui.Click(x, y, b.hud)
		}
	}
	if _, wy := ebiten.Wheel(); wy > 0 {
		g.gui.Scroll(x, y, hud.ScrollForward)
	} else if wy < 0 {
		g.gui.Scroll(x, y, hud.ScrollBackward)
	}
	for _, b := range buttons {
		if ebiten.IsMouseButtonPressed(b.ebiten) && !inpututil.IsMouseButtonJustPressed(b.ebiten) {
			if mx != g.lastX || my != g.lastY {
				g.huds.HandleDrag(float64(mx-g.lastX), float64(my-g.lastY), b.hud)
			}
		}
	}
	g.lastX, g.lastY = mx, my
	return nil
}

// Draw renders either the editor or the live HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	if g.huds.IsOpen() {
		mx, my := ebiten.CursorPosition()
		g.gui.Draw(float64(mx), float64(my))
		return
	}
	g.overlay.Draw()
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

var buttons = []struct {
	ebiten ebiten.MouseButton
	hud    hud.MouseButton
}{
	{ebiten.MouseButtonLeft, hud.MouseButtonLeft},
	{ebiten.MouseButtonRight, hud.MouseButtonRight},
	{ebiten.MouseButtonMiddle, hud.MouseButtonMiddle},
}

// input reads modifier state from ebiten.
type input struct{}

func (input) ShiftDown() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift)
}

func (input) ControlDown() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (input) InGui() bool {
	return ebiten.IsFocused()
}
