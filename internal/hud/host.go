// Package hud implements on-screen HUD elements that can be dragged, scaled
// and resized from a modal edit surface.
package hud

import "image/color"

// Renderer is the host drawing capability the editor consumes. Coordinates
// are screen pixels; Translate and Scale push onto a transform that stays in
// effect until FinishDraw.
type Renderer interface {
	ScreenSize() (w, h float64)
	// StringWidth returns the rendered width of s with formatting codes removed.
	StringWidth(s string) float64

	DrawRect(c color.Color, x, y, w, h float64)
	StrokeRect(c color.Color, x, y, w, h float64)
	DrawStringWithShadow(s string, x, y float64)

	Translate(x, y float64)
	Scale(s float64)
	FinishDraw()
}

// Input reports host modifier and focus state.
type Input interface {
	ShiftDown() bool
	ControlDown() bool
	// InGui reports whether the client is currently showing a modal surface
	// and has input focus.
	InGui() bool
}

// MouseButton identifies a pointer button. Only MouseButtonLeft drives editing.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Scroll directions delivered to scroll handlers.
const (
	ScrollForward  = 1
	ScrollBackward = -1
)
