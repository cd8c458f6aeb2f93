package hud

import "image/color"

// ScaleStep is the scale change applied by one scroll tick.
const ScaleStep = 0.02

var backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 150}

const (
	hintEditing     = "&bCurrently editing&f: &6"
	hintTextScale   = "&eUse &ascroll wheel&e to scale the text in size"
	hintWidth       = "&eUse &ashift&e + &ascroll wheel&e to change the width size"
	hintHeight      = "&eUse &actrl&e + &ascroll wheel&e to change the height size"
	hintScale       = "&eUse &ascroll wheel&e to scale the hud in size"
	hintLineSpacing = 9
)

// Controller owns a set of elements and the modal edit surface that moves,
// scales and resizes them. All methods must be called from the frame loop.
type Controller struct {
	state          State
	drawBackground bool

	surface  Surface
	renderer Renderer
	input    Input

	elements []Element
	focused  int
}

// New returns a Controller editing elements whose saved geometry lives in
// state. The controller creates its own Gui surface.
func New(state State, r Renderer, in Input, drawBackground bool) *Controller {
	return NewWithSurface(state, NewGui(), r, in, drawBackground)
}

// NewWithSurface is like New but draws on the given surface.
func NewWithSurface(state State, s Surface, r Renderer, in Input, drawBackground bool) *Controller {
	if state == nil {
		state = State{}
	}
	c := &Controller{
		state:          state,
		drawBackground: drawBackground,
		surface:        s,
		renderer:       r,
		input:          in,
		focused:        -1,
	}
	s.OnClick(c.handleClick)
	s.OnScroll(c.handleScroll)
	s.OnDraw(c.handleDraw)
	return c
}

// NewBox registers a box that can be dragged and scaled.
func (c *Controller) NewBox(name string, defaults Options) *Box {
	b := newBox(name, c.state.initial(name, defaults), false)
	c.elements = append(c.elements, b)
	return b
}

// NewResizableBox registers a box whose width and height can also be changed
// with shift/ctrl + scroll.
func (c *Controller) NewResizableBox(name string, defaults Options) *Box {
	b := newBox(name, c.state.initial(name, defaults), true)
	c.elements = append(c.elements, b)
	return b
}

// NewText registers a text element sized from its display text.
func (c *Controller) NewText(name string, x, y float64, text string) *Text {
	t := newText(name, c.state.initial(name, Options{X: x, Y: y}), text, c.renderer)
	c.elements = append(c.elements, t)
	return t
}

func (c *Controller) Open() *Controller {
	c.surface.Open()
	return c
}

func (c *Controller) Close() *Controller {
	c.surface.Close()
	return c
}

func (c *Controller) IsOpen() bool { return c.surface.IsOpen() }

// Surface returns the modal surface the controller is subscribed to.
func (c *Controller) Surface() Surface { return c.surface }

// Elements returns the registered elements in registration order.
func (c *Controller) Elements() []Element { return c.elements }

// Focused returns the element selected for editing, or nil.
func (c *Controller) Focused() Element {
	if c.focused < 0 || c.focused >= len(c.elements) {
		return nil
	}
	return c.elements[c.focused]
}

// Save copies every element's geometry into the state mapping. Writing the
// mapping to durable storage is left to the caller.
func (c *Controller) Save() *Controller {
	for _, e := range c.elements {
		e.base().saveInto(c.state)
	}
	return c
}

// State returns the persisted-state mapping the controller saves into.
func (c *Controller) State() State { return c.state }

func (c *Controller) handleClick(x, y float64, button MouseButton) {
	if button != MouseButtonLeft {
		return
	}
	c.focused = -1
	for i, e := range c.elements {
		if e.Contains(x, y) {
			c.focused = i
			return
		}
	}
}

func (c *Controller) handleScroll(_, _ float64, dir int) {
	e := c.Focused()
	if e == nil {
		return
	}
	if b, ok := e.(*Box); ok && b.resizable {
		if c.input.ShiftDown() {
			b.resizeWidth(dir)
			return
		}
		if c.input.ControlDown() {
			b.resizeHeight(dir)
			return
		}
	}
	if dir == ScrollForward {
		e.base().scaleBy(ScaleStep)
	} else {
		e.base().scaleBy(-ScaleStep)
	}
}

// HandleDrag applies a pointer drag to the focused element. The host delivers
// drags regardless of modal state, so the controller filters them itself.
func (c *Controller) HandleDrag(dx, dy float64, button MouseButton) {
	if !c.input.InGui() || !c.IsOpen() {
		return
	}
	if button != MouseButtonLeft {
		return
	}
	e := c.Focused()
	if e == nil {
		return
	}
	w, h := c.renderer.ScreenSize()
	e.base().applyDrag(dx, dy, w, h)
}

func (c *Controller) handleDraw(mouseX, mouseY float64) {
	r := c.renderer
	w, h := r.ScreenSize()
	if c.drawBackground {
		r.DrawRect(backgroundColor, 0, 0, w, h)
	}
	for _, e := range c.elements {
		e.triggerDraw(mouseX, mouseY)
		e.base().drawOutline(r)
	}

	e := c.Focused()
	if e == nil {
		return
	}
	c.drawCentered(hintEditing+e.Name(), 0)
	switch e := e.(type) {
	case *Text:
		c.drawCentered(hintTextScale, hintLineSpacing)
	case *Box:
		y := float64(hintLineSpacing)
		if e.resizable {
			c.drawCentered(hintWidth, hintLineSpacing)
			c.drawCentered(hintHeight, 2*hintLineSpacing)
			y += 2 * hintLineSpacing
		}
		c.drawCentered(hintScale, y)
	}
}

func (c *Controller) drawCentered(s string, yOffset float64) {
	w, h := c.renderer.ScreenSize()
	c.renderer.DrawStringWithShadow(s, (w-c.renderer.StringWidth(s))/2, h/2+yOffset)
}
