//go:build ebiten

package render

import (
	"image/color"
	"strings"

	"hudedit/internal/colorcode"
	"hudedit/internal/hud"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ hud.Renderer = (*Renderer)(nil)

// Renderer draws HUD primitives onto an ebiten screen image. Text is drawn
// with basicfont scaled so one line is hud.LineHeight pixels tall.
type Renderer struct {
	w, h   int
	screen *ebiten.Image
	pixel  *ebiten.Image

	face       font.Face
	ascent     float64
	glyphScale float64

	geo ebiten.GeoM
}

// NewRenderer constructs a Renderer for a logical screen of w*h pixels.
func NewRenderer(w, h int) *Renderer {
	r := &Renderer{w: w, h: h, face: basicfont.Face7x13}
	r.pixel = ebiten.NewImage(1, 1)
	r.pixel.Fill(color.White)
	m := r.face.Metrics()
	r.ascent = float64(m.Ascent.Ceil())
	r.glyphScale = float64(hud.LineHeight) / float64(m.Height.Ceil())
	return r
}

// Begin sets the image drawn to for the current frame.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.geo.Reset()
}

func (r *Renderer) ScreenSize() (float64, float64) {
	return float64(r.w), float64(r.h)
}

func (r *Renderer) StringWidth(s string) float64 {
	widest := 0.0
	for _, line := range strings.Split(colorcode.Strip(s), "\n") {
		if w := r.measure(line); w > widest {
			widest = w
		}
	}
	return widest
}

func (r *Renderer) measure(s string) float64 {
	return float64(font.MeasureString(r.face, s).Ceil()) * r.glyphScale
}

func (r *Renderer) DrawRect(c color.Color, x, y, w, h float64) {
	if r.screen == nil || w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(r.geo)
	op.ColorScale.ScaleWithColor(c)
	r.screen.DrawImage(r.pixel, op)
}

// StrokeRect draws a one pixel outline. The transform only translates and
// scales, so the rectangle stays axis aligned.
func (r *Renderer) StrokeRect(c color.Color, x, y, w, h float64) {
	if r.screen == nil {
		return
	}
	x1, y1 := r.geo.Apply(x, y)
	x2, y2 := r.geo.Apply(x+w, y+h)
	vector.StrokeRect(r.screen, float32(x1), float32(y1), float32(x2-x1), float32(y2-y1), 1, c, false)
}

func (r *Renderer) DrawStringWithShadow(s string, x, y float64) {
	if r.screen == nil {
		return
	}
	for i, line := range strings.Split(s, "\n") {
		ly := y + float64(i*hud.LineHeight)
		cursor := x
		for _, run := range colorcode.Split(line) {
			r.drawRun(run.Text, cursor+r.glyphScale, ly+r.glyphScale, colorcode.Shadow(run.Color))
			r.drawRun(run.Text, cursor, ly, run.Color)
			cursor += r.measure(run.Text)
		}
	}
}

func (r *Renderer) drawRun(s string, x, y float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, r.ascent)
	op.GeoM.Scale(r.glyphScale, r.glyphScale)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(r.geo)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(r.screen, s, r.face, op)
}

// Translate and Scale apply before any transform already in effect.
func (r *Renderer) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(r.geo)
	r.geo = m
}

func (r *Renderer) Scale(s float64) {
	var m ebiten.GeoM
	m.Scale(s, s)
	m.Concat(r.geo)
	r.geo = m
}

// FinishDraw drops the current transform.
func (r *Renderer) FinishDraw() {
	r.geo.Reset()
}
