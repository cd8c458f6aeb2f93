package hud

import (
	"image/color"
	"strings"
)

var (
	normalOutline = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	hoverOutline  = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// Element is one editable HUD item. It is implemented by *Box and *Text.
type Element interface {
	Name() string
	X() float64
	Y() float64
	Width() float64
	Height() float64
	Scale() float64
	// Position returns the origin and the scaled extent, suitable for drawing
	// a single item without a transform stack.
	Position() (x, y, w, h float64)
	// Bounds returns the top-left and bottom-right corners in screen space.
	Bounds() (x1, y1, x2, y2 float64)
	Contains(x, y float64) bool
	Hovering() bool

	base() *element
	triggerDraw(pointerX, pointerY float64)
}

type element struct {
	name     string
	geom     Geometry
	hovering bool
}

func (e *element) base() *element { return e }

func (e *element) Name() string    { return e.name }
func (e *element) X() float64      { return e.geom.X }
func (e *element) Y() float64      { return e.geom.Y }
func (e *element) Width() float64  { return e.geom.Width }
func (e *element) Height() float64 { return e.geom.Height }
func (e *element) Scale() float64  { return e.geom.Scale }
func (e *element) Hovering() bool  { return e.hovering }

func (e *element) Position() (x, y, w, h float64) {
	g := e.geom
	return g.X, g.Y, g.Width * g.Scale, g.Height * g.Scale
}

// Bounds applies the scale to the extent only; the origin never moves.
func (e *element) Bounds() (x1, y1, x2, y2 float64) {
	g := e.geom
	return g.X, g.Y, g.X + g.Width*g.Scale, g.Y + g.Height*g.Scale
}

func (e *element) Contains(x, y float64) bool {
	x1, y1, x2, y2 := e.Bounds()
	return x >= x1 && x <= x2 && y >= y1 && y <= y2
}

// applyDrag moves the element by (dx, dy), keeping it on screen. The clamp
// uses the unscaled size.
func (e *element) applyDrag(dx, dy, screenW, screenH float64) {
	e.geom.X = clamp(e.geom.X+dx, 0, screenW-e.geom.Width)
	e.geom.Y = clamp(e.geom.Y+dy, 0, screenH-e.geom.Height)
}

func (e *element) drawOutline(r Renderer) {
	c := normalOutline
	if e.hovering {
		c = hoverOutline
	}
	r.Translate(e.geom.X, e.geom.Y)
	r.Scale(e.geom.Scale)
	r.StrokeRect(c, -1, -1, e.geom.Width+2, e.geom.Height+2)
	r.FinishDraw()
}

func (e *element) saveInto(s State) {
	s[e.name] = e.geom
}

func (e *element) scaleBy(delta float64) {
	s := e.geom.Scale + delta
	if s < MinScale {
		s = MinScale
	}
	e.geom.Scale = s
}

// Box is an element with an explicit width and height.
type Box struct {
	element
	resizable  bool
	resizeStep float64
	onDraw     func(x, y, width, height float64)
}

func newBox(name string, g Geometry, resizable bool) *Box {
	return &Box{
		element:    element{name: name, geom: g},
		resizable:  resizable,
		resizeStep: 1,
	}
}

// OnDraw sets the callback invoked every edit-mode frame with the current
// geometry, replacing any previous one.
func (b *Box) OnDraw(fn func(x, y, width, height float64)) *Box {
	b.onDraw = fn
	return b
}

// Resizable reports whether width and height can be changed independently.
func (b *Box) Resizable() bool { return b.resizable }

// ResizeStep is the amount one resize scroll tick adds or removes.
func (b *Box) ResizeStep() float64 { return b.resizeStep }

// SetResizeStep changes the per-tick resize amount.
func (b *Box) SetResizeStep(step float64) *Box {
	b.resizeStep = step
	return b
}

func (b *Box) resizeWidth(dir int) {
	b.geom.Width = stepSize(b.geom.Width, b.resizeStep, dir)
}

func (b *Box) resizeHeight(dir int) {
	b.geom.Height = stepSize(b.geom.Height, b.resizeStep, dir)
}

func stepSize(v, step float64, dir int) float64 {
	if dir == ScrollForward {
		return v + step
	}
	v -= step
	if v < 0 {
		v = 0
	}
	return v
}

func (b *Box) triggerDraw(px, py float64) {
	if b.onDraw != nil {
		g := b.geom
		b.onDraw(g.X, g.Y, g.Width, g.Height)
	}
	b.hovering = b.Contains(px, py)
}

// Text is an element whose size is derived from its literal display text.
type Text struct {
	element
	text   string
	onDraw func(x, y float64, text string)
}

func newText(name string, g Geometry, text string, r Renderer) *Text {
	t := &Text{element: element{name: name, geom: g}, text: text}
	t.geom.Width, t.geom.Height = textSize(r, text, g.Scale)
	return t
}

// OnDraw sets the callback invoked every edit-mode frame with the current
// position and the display text, replacing any previous one.
func (t *Text) OnDraw(fn func(x, y float64, text string)) *Text {
	t.onDraw = fn
	return t
}

// Text returns the display text.
func (t *Text) Text() string { return t.text }

func (t *Text) triggerDraw(px, py float64) {
	if t.onDraw != nil {
		t.onDraw(t.geom.X, t.geom.Y, t.text)
	}
	t.hovering = t.Contains(px, py)
}

// textSize measures text line by line: the widest line sets the width and
// every line adds LineHeight.
func textSize(r Renderer, text string, scale float64) (w, h float64) {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if lw := r.StringWidth(line) * scale; lw > w {
			w = lw
		}
	}
	h = float64(LineHeight*len(lines)) * scale
	return w, h
}
