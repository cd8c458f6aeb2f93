package hud

// Surface is a modal screen the editor draws on while open.
type Surface interface {
	Open()
	Close()
	IsOpen() bool
	OnClick(fn func(x, y float64, button MouseButton))
	OnScroll(fn func(x, y float64, dir int))
	OnDraw(fn func(mouseX, mouseY float64))
}

// Gui is the default Surface. The host feeds it raw events through Click,
// Scroll and Draw; they reach subscribers only while the surface is open.
type Gui struct {
	open    bool
	clicked []func(x, y float64, button MouseButton)
	scrolls []func(x, y float64, dir int)
	draws   []func(mouseX, mouseY float64)
}

// NewGui returns a closed surface with no subscribers.
func NewGui() *Gui { return &Gui{} }

func (g *Gui) Open()        { g.open = true }
func (g *Gui) Close()       { g.open = false }
func (g *Gui) IsOpen() bool { return g.open }

func (g *Gui) OnClick(fn func(x, y float64, button MouseButton)) {
	g.clicked = append(g.clicked, fn)
}

func (g *Gui) OnScroll(fn func(x, y float64, dir int)) {
	g.scrolls = append(g.scrolls, fn)
}

func (g *Gui) OnDraw(fn func(mouseX, mouseY float64)) {
	g.draws = append(g.draws, fn)
}

// Click delivers a pointer press.
func (g *Gui) Click(x, y float64, button MouseButton) {
	if !g.open {
		return
	}
	for _, fn := range g.clicked {
		fn(x, y, button)
	}
}

// Scroll delivers a wheel tick; dir is ScrollForward or ScrollBackward.
func (g *Gui) Scroll(x, y float64, dir int) {
	if !g.open || dir == 0 {
		return
	}
	for _, fn := range g.scrolls {
		fn(x, y, dir)
	}
}

// Draw delivers one frame.
func (g *Gui) Draw(mouseX, mouseY float64) {
	if !g.open {
		return
	}
	for _, fn := range g.draws {
		fn(mouseX, mouseY)
	}
}
