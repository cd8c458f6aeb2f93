package ui

import (
	"image/color"

	"hudedit/internal/hud"
)

// Element names used as persistence keys.
const (
	BoxName       = "test"
	TextName      = "test2"
	ResizableName = "test3"
)

const sampleText = "&aThis is\n&cA &4Test\n&bThis might be a bigger text\n&2Not this one though"

var (
	boxEditColor       = color.RGBA{R: 0, G: 150, B: 150, A: 255}
	resizableEditColor = color.RGBA{R: 0, G: 150, B: 0, A: 255}
	boxLiveColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	resizableLiveColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Overlay owns the sample HUD elements and draws them during normal play.
// While the editor is open the controller draws them through the callbacks
// registered in NewOverlay instead.
type Overlay struct {
	r         hud.Renderer
	huds      *hud.Controller
	box       *hud.Box
	text      *hud.Text
	resizable *hud.Box
}

// NewOverlay registers the sample elements on c.
func NewOverlay(c *hud.Controller, r hud.Renderer) *Overlay {
	o := &Overlay{r: r, huds: c}
	o.box = c.NewBox(BoxName, hud.Options{X: 10, Y: 10, Width: 100, Height: 50})
	o.text = c.NewText(TextName, 120, 10, sampleText)
	o.resizable = c.NewResizableBox(ResizableName, hud.Options{X: 200, Y: 10, Width: 100, Height: 50})

	o.box.OnDraw(func(x, y, w, h float64) {
		o.drawScaled(x, y, o.box.Scale(), func() { r.DrawRect(boxEditColor, 0, 0, w, h) })
	})
	o.text.OnDraw(func(x, y float64, s string) {
		o.drawScaled(x, y, o.text.Scale(), func() { r.DrawStringWithShadow(s, 0, 0) })
	})
	o.resizable.OnDraw(func(x, y, w, h float64) {
		o.drawScaled(x, y, o.resizable.Scale(), func() { r.DrawRect(resizableEditColor, 0, 0, w, h) })
	})
	return o
}

func (o *Overlay) drawScaled(x, y, scale float64, draw func()) {
	o.r.Translate(x, y)
	o.r.Scale(scale)
	draw()
	o.r.FinishDraw()
}

// Draw renders the live HUD. It does nothing while the editor is open since
// the editor already draws every element.
func (o *Overlay) Draw() {
	if o == nil || o.huds.IsOpen() {
		return
	}
	x, y, w, h := o.box.Position()
	o.r.DrawRect(boxLiveColor, x, y, w, h)

	x, y, w, h = o.resizable.Position()
	o.r.DrawRect(resizableLiveColor, x, y, w, h)

	o.drawScaled(o.text.X(), o.text.Y(), o.text.Scale(), func() {
		o.r.DrawStringWithShadow(o.text.Text(), 0, 0)
	})
}
