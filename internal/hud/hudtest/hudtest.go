// Package hudtest provides recording fakes of the host capabilities used by
// the hud package.
package hudtest

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"hudedit/internal/colorcode"
)

// GlyphWidth is the width Renderer reports for every visible rune.
const GlyphWidth = 6

// Call is one recorded renderer invocation.
type Call struct {
	Op    string
	Color color.Color
	X, Y  float64
	W, H  float64
	Text  string
}

func (c Call) String() string {
	if c.Text != "" {
		return fmt.Sprintf("%s(%q, %g, %g)", c.Op, c.Text, c.X, c.Y)
	}
	return fmt.Sprintf("%s(%g, %g, %g, %g)", c.Op, c.X, c.Y, c.W, c.H)
}

// Renderer records draw calls against a fixed-size screen. Strings measure
// GlyphWidth per rune after formatting codes are stripped.
type Renderer struct {
	W, H  float64
	Calls []Call
}

// NewRenderer returns a Renderer for a w*h screen.
func NewRenderer(w, h float64) *Renderer {
	return &Renderer{W: w, H: h}
}

func (r *Renderer) ScreenSize() (float64, float64) { return r.W, r.H }

func (r *Renderer) StringWidth(s string) float64 {
	return float64(GlyphWidth * utf8.RuneCountInString(colorcode.Strip(s)))
}

func (r *Renderer) DrawRect(c color.Color, x, y, w, h float64) {
	r.Calls = append(r.Calls, Call{Op: "rect", Color: c, X: x, Y: y, W: w, H: h})
}

func (r *Renderer) StrokeRect(c color.Color, x, y, w, h float64) {
	r.Calls = append(r.Calls, Call{Op: "stroke", Color: c, X: x, Y: y, W: w, H: h})
}

func (r *Renderer) DrawStringWithShadow(s string, x, y float64) {
	r.Calls = append(r.Calls, Call{Op: "string", Text: s, X: x, Y: y})
}

func (r *Renderer) Translate(x, y float64) {
	r.Calls = append(r.Calls, Call{Op: "translate", X: x, Y: y})
}

func (r *Renderer) Scale(s float64) {
	r.Calls = append(r.Calls, Call{Op: "scale", X: s, Y: s})
}

func (r *Renderer) FinishDraw() {
	r.Calls = append(r.Calls, Call{Op: "finish"})
}

// Ops returns the recorded operation names in order.
func (r *Renderer) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Strings returns the text of every recorded string draw.
func (r *Renderer) Strings() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == "string" {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *Renderer) Reset() { r.Calls = r.Calls[:0] }

// Input is a settable hud.Input.
type Input struct {
	Shift, Control bool
	Gui            bool
}

func (in *Input) ShiftDown() bool   { return in.Shift }
func (in *Input) ControlDown() bool { return in.Control }
func (in *Input) InGui() bool       { return in.Gui }
