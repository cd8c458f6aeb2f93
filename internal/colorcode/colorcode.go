// Package colorcode handles the two-character formatting codes ("&a", "&l",
// "&r", ...) embedded in HUD strings.
package colorcode

import (
	"image/color"
	"strings"
)

// Palette holds the sixteen colors selected by codes 0-9 and a-f.
var Palette = [16]color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 170, A: 255},
	{R: 0, G: 170, B: 0, A: 255},
	{R: 0, G: 170, B: 170, A: 255},
	{R: 170, G: 0, B: 0, A: 255},
	{R: 170, G: 0, B: 170, A: 255},
	{R: 255, G: 170, B: 0, A: 255},
	{R: 170, G: 170, B: 170, A: 255},
	{R: 85, G: 85, B: 85, A: 255},
	{R: 85, G: 85, B: 255, A: 255},
	{R: 85, G: 255, B: 85, A: 255},
	{R: 85, G: 255, B: 255, A: 255},
	{R: 255, G: 85, B: 85, A: 255},
	{R: 255, G: 85, B: 255, A: 255},
	{R: 255, G: 255, B: 85, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Default is the color of text before any code applies.
var Default = Palette[15]

// Run is a span of text drawn in a single color.
type Run struct {
	Text  string
	Color color.RGBA
}

func isPrefix(b byte) bool { return b == '&' }

// code returns the meaning of c: a palette index, -1 for a reset, or -2 for
// a style code that does not change color. ok is false for non-codes.
func code(c byte) (idx int, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c == 'r' || c == 'R':
		return -1, true
	case (c >= 'k' && c <= 'o') || (c >= 'K' && c <= 'O'):
		return -2, true
	}
	return 0, false
}

// Strip removes every formatting code from s.
func Strip(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isPrefix(s[i]) && i+1 < len(s) {
			if _, ok := code(s[i+1]); ok {
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Split breaks s into colored runs. Empty runs are dropped.
func Split(s string) []Run {
	var (
		runs []Run
		cur  = Default
		b    strings.Builder
	)
	flush := func() {
		if b.Len() > 0 {
			runs = append(runs, Run{Text: b.String(), Color: cur})
			b.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		if isPrefix(s[i]) && i+1 < len(s) {
			if idx, ok := code(s[i+1]); ok {
				switch {
				case idx >= 0:
					flush()
					cur = Palette[idx]
				case idx == -1:
					flush()
					cur = Default
				}
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	flush()
	return runs
}

// Shadow returns the darker color used for a run's drop shadow.
func Shadow(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 4, G: c.G / 4, B: c.B / 4, A: c.A}
}
