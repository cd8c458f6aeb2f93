package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gui(c *Controller) *Gui { return c.Surface().(*Gui) }

func TestOpenCloseIdempotent(t *testing.T) {
	c, _, _ := newTestController()
	assert.False(t, c.IsOpen())

	c.Open().Open()
	assert.True(t, c.IsOpen())
	c.Close().Close()
	assert.False(t, c.IsOpen())
}

func TestClickFocusesFirstContainingElement(t *testing.T) {
	c, _, _ := newTestController()
	first := c.NewBox("first", Options{X: 0, Y: 0, Width: 100, Height: 100})
	c.NewBox("second", Options{X: 50, Y: 50, Width: 100, Height: 100})
	third := c.NewBox("third", Options{X: 300, Y: 300, Width: 10, Height: 10})
	c.Open()

	gui(c).Click(75, 75, MouseButtonLeft)
	assert.Equal(t, Element(first), c.Focused())

	gui(c).Click(305, 305, MouseButtonLeft)
	assert.Equal(t, Element(third), c.Focused())
}

func TestClickOutsideClearsFocus(t *testing.T) {
	c, _, _ := newTestController()
	c.NewBox("a", Options{X: 0, Y: 0, Width: 10, Height: 10})
	c.NewBox("b", Options{X: 20, Y: 20, Width: 10, Height: 10})
	c.Open()

	gui(c).Click(25, 25, MouseButtonLeft)
	require.NotNil(t, c.Focused())
	gui(c).Click(400, 400, MouseButtonLeft)
	assert.Nil(t, c.Focused())
}

func TestClickIgnoresOtherButtons(t *testing.T) {
	c, _, _ := newTestController()
	c.NewBox("a", Options{X: 0, Y: 0, Width: 10, Height: 10})
	c.Open()

	gui(c).Click(5, 5, MouseButtonRight)
	assert.Nil(t, c.Focused())
	gui(c).Click(5, 5, MouseButtonLeft)
	gui(c).Click(400, 400, MouseButtonMiddle)
	assert.NotNil(t, c.Focused())
}

func TestClickWhileClosedIsIgnored(t *testing.T) {
	c, _, _ := newTestController()
	c.NewBox("a", Options{X: 0, Y: 0, Width: 10, Height: 10})

	gui(c).Click(5, 5, MouseButtonLeft)
	assert.Nil(t, c.Focused())
}

func TestScrollWithoutFocusIsNoop(t *testing.T) {
	c, _, _ := newTestController()
	b := c.NewBox("a", Options{X: 0, Y: 0, Width: 10, Height: 10})
	c.Open()

	gui(c).Scroll(5, 5, ScrollForward)
	assert.Equal(t, 1.0, b.Scale())
}

func TestScrollScales(t *testing.T) {
	c, _, _ := newTestController()
	b := c.NewBox("a", Options{X: 0, Y: 0, Width: 10, Height: 10})
	c.Open()
	gui(c).Click(5, 5, MouseButtonLeft)

	gui(c).Scroll(5, 5, ScrollBackward)
	assert.InDelta(t, 1-ScaleStep, b.Scale(), 1e-12)
	gui(c).Scroll(5, 5, ScrollForward)
	gui(c).Scroll(5, 5, ScrollForward)
	assert.InDelta(t, 1+ScaleStep, b.Scale(), 1e-12)
}

func TestScrollScaleStopsAtMinimum(t *testing.T) {
	c, _, _ := newTestController()
	b := c.NewBox("a", Options{X: 0, Y: 0, Width: 10, Height: 10})
	c.Open()
	gui(c).Click(5, 5, MouseButtonLeft)

	for i := 0; i < 100; i++ {
		gui(c).Scroll(5, 5, ScrollBackward)
	}
	assert.Equal(t, MinScale, b.Scale())
	x1, y1, x2, y2 := b.Bounds()
	assert.LessOrEqual(t, x1, x2)
	assert.LessOrEqual(t, y1, y2)
}

func TestShiftScrollResizesWidth(t *testing.T) {
	c, _, in := newTestController()
	b := c.NewResizableBox("a", Options{X: 0, Y: 0, Width: 100, Height: 50})
	c.Open()
	gui(c).Click(5, 5, MouseButtonLeft)

	in.Shift = true
	gui(c).Scroll(5, 5, ScrollForward)
	assert.Equal(t, 101.0, b.Width())
	assert.Equal(t, 50.0, b.Height())
	assert.Equal(t, 1.0, b.Scale())

	gui(c).Scroll(5, 5, ScrollBackward)
	assert.Equal(t, 100.0, b.Width())
}

func TestControlScrollResizesHeight(t *testing.T) {
	c, _, in := newTestController()
	b := c.NewResizableBox("a", Options{X: 0, Y: 0, Width: 100, Height: 50}).SetResizeStep(4)
	c.Open()
	gui(c).Click(5, 5, MouseButtonLeft)

	in.Control = true
	gui(c).Scroll(5, 5, ScrollForward)
	assert.Equal(t, 54.0, b.Height())
	assert.Equal(t, 100.0, b.Width())
	assert.Equal(t, 1.0, b.Scale())
}

func TestShiftTakesPriorityOverControl(t *testing.T) {
	c, _, in := newTestController()
	b := c.NewResizableBox("a", Options{X: 0, Y: 0, Width: 100, Height: 50})
	c.Open()
	gui(c).Click(5, 5, MouseButtonLeft)

	in.Shift, in.Control = true, true
	gui(c).Scroll(5, 5, ScrollForward)
	assert.Equal(t, 101.0, b.Width())
	assert.Equal(t, 50.0, b.Height())
}

func TestModifierOnFixedBoxScales(t *testing.T) {
	c, _, in := newTestController()
	b := c.NewBox("a", Options{X: 0, Y: 0, Width: 100, Height: 50})
	c.Open()
	gui(c).Click(5, 5, MouseButtonLeft)

	in.Shift = true
	gui(c).Scroll(5, 5, ScrollForward)
	assert.Equal(t, 100.0, b.Width())
	assert.InDelta(t, 1+ScaleStep, b.Scale(), 1e-12)
}

func TestDragMovesFocusedElement(t *testing.T) {
	c, _, _ := newTestController()
	b := c.NewBox("a", Options{X: 10, Y: 10, Width: 10, Height: 10})
	other := c.NewBox("b", Options{X: 100, Y: 100, Width: 10, Height: 10})
	c.Open()
	gui(c).Click(15, 15, MouseButtonLeft)

	c.HandleDrag(5, 6, MouseButtonLeft)
	assert.Equal(t, 15.0, b.X())
	assert.Equal(t, 16.0, b.Y())
	assert.Equal(t, 100.0, other.X())
}

func TestDragIsFiltered(t *testing.T) {
	c, _, in := newTestController()
	b := c.NewBox("a", Options{X: 10, Y: 10, Width: 10, Height: 10})

	c.HandleDrag(5, 5, MouseButtonLeft)
	assert.Equal(t, 10.0, b.X(), "closed surface")

	c.Open()
	c.HandleDrag(5, 5, MouseButtonLeft)
	assert.Equal(t, 10.0, b.X(), "no focus")

	gui(c).Click(15, 15, MouseButtonLeft)
	c.HandleDrag(5, 5, MouseButtonRight)
	assert.Equal(t, 10.0, b.X(), "secondary button")

	in.Gui = false
	c.HandleDrag(5, 5, MouseButtonLeft)
	assert.Equal(t, 10.0, b.X(), "host not in gui")

	in.Gui = true
	c.HandleDrag(5, 5, MouseButtonLeft)
	assert.Equal(t, 15.0, b.X())
}

func TestDrawWhileClosedDrawsNothing(t *testing.T) {
	c, r, _ := newTestController()
	c.NewBox("a", Options{Width: 10, Height: 10})

	gui(c).Draw(0, 0)
	assert.Empty(t, r.Calls)
}

func TestDrawOrder(t *testing.T) {
	c, r, _ := newTestController()
	var order []string
	c.NewBox("a", Options{Width: 10, Height: 10}).OnDraw(func(_, _, _, _ float64) { order = append(order, "a") })
	c.NewText("b", 20, 20, "b").OnDraw(func(_, _ float64, _ string) { order = append(order, "b") })
	c.Open()

	gui(c).Draw(500, 500)
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, []string{
		"rect",
		"translate", "scale", "stroke", "finish",
		"translate", "scale", "stroke", "finish",
	}, r.Ops())
	bg := r.Calls[0]
	assert.Equal(t, backgroundColor, bg.Color)
	assert.Equal(t, [4]float64{0, 0, 854, 480}, [4]float64{bg.X, bg.Y, bg.W, bg.H})
}

func TestDrawWithoutBackground(t *testing.T) {
	c, r, _ := newTestController()
	c.drawBackground = false
	c.NewBox("a", Options{Width: 10, Height: 10})
	c.Open()

	gui(c).Draw(0, 0)
	assert.Equal(t, []string{"translate", "scale", "stroke", "finish"}, r.Ops())
}

func TestHintsForBox(t *testing.T) {
	c, r, _ := newTestController()
	c.NewBox("plain", Options{Width: 10, Height: 10})
	c.Open()
	gui(c).Click(5, 5, MouseButtonLeft)
	r.Reset()

	gui(c).Draw(0, 0)
	strs := r.Strings()
	require.Len(t, strs, 2)
	assert.Equal(t, hintEditing+"plain", strs[0].Text)
	assert.Equal(t, hintScale, strs[1].Text)
	assert.Equal(t, 240.0, strs[0].Y)
	assert.Equal(t, 249.0, strs[1].Y)
	assert.Equal(t, (854-r.StringWidth(strs[1].Text))/2, strs[1].X)
}

func TestHintsForResizableBox(t *testing.T) {
	c, r, _ := newTestController()
	c.NewResizableBox("sized", Options{Width: 10, Height: 10})
	c.Open()
	gui(c).Click(5, 5, MouseButtonLeft)
	r.Reset()

	gui(c).Draw(0, 0)
	strs := r.Strings()
	require.Len(t, strs, 4)
	assert.Equal(t, []string{hintEditing + "sized", hintWidth, hintHeight, hintScale},
		[]string{strs[0].Text, strs[1].Text, strs[2].Text, strs[3].Text})
	assert.Equal(t, []float64{240, 249, 258, 267},
		[]float64{strs[0].Y, strs[1].Y, strs[2].Y, strs[3].Y})
}

func TestHintsForText(t *testing.T) {
	c, r, _ := newTestController()
	c.NewText("label", 0, 0, "some text")
	c.Open()
	gui(c).Click(1, 1, MouseButtonLeft)
	r.Reset()

	gui(c).Draw(0, 0)
	strs := r.Strings()
	require.Len(t, strs, 2)
	assert.Equal(t, hintEditing+"label", strs[0].Text)
	assert.Equal(t, hintTextScale, strs[1].Text)
}

func TestNoHintsWithoutFocus(t *testing.T) {
	c, r, _ := newTestController()
	c.NewBox("a", Options{Width: 10, Height: 10})
	c.Open()

	gui(c).Draw(0, 0)
	assert.Empty(t, r.Strings())
}

func TestSaveWritesEveryElement(t *testing.T) {
	state := State{}
	c, _, _ := newTestController()
	c.state = state
	c.NewBox("a", Options{X: 1, Y: 2, Width: 3, Height: 4})
	c.NewText("b", 5, 6, "xy")

	assert.Same(t, c, c.Save())
	assert.Equal(t, Geometry{X: 1, Y: 2, Scale: 1, Width: 3, Height: 4}, state["a"])
	assert.Equal(t, Geometry{X: 5, Y: 6, Scale: 1, Width: 12, Height: 9}, state["b"])
}

func TestSaveRoundTrip(t *testing.T) {
	c, r, in := newTestController()
	b := c.NewResizableBox("a", Options{X: 10, Y: 10, Width: 100, Height: 50})
	c.Open()
	gui(c).Click(20, 20, MouseButtonLeft)
	in.Shift = true
	gui(c).Scroll(0, 0, ScrollForward)
	in.Shift = false
	gui(c).Scroll(0, 0, ScrollForward)
	c.HandleDrag(3, 4, MouseButtonLeft)
	c.Save()

	again := New(c.State(), r, in, true).NewResizableBox("a", Options{})
	assert.Equal(t, b.base().geom, again.base().geom)
}
