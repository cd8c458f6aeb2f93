package hud

// LineHeight is the glyph line height used to size text elements.
const LineHeight = 9

// MinScale is the smallest scale a scroll gesture can reach.
const MinScale = 0.1

// Geometry is the persisted shape of one element.
type Geometry struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Scale  float64 `yaml:"scale"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// State maps element names to their last saved geometry.
type State map[string]Geometry

// Options holds the initial geometry of an element. The zero value places the
// element at the origin with no size; a zero Scale means 1.
type Options struct {
	X, Y          float64
	Scale         float64
	Width, Height float64
}

func (o Options) geometry() Geometry {
	scale := o.Scale
	if scale == 0 {
		scale = 1
	}
	return Geometry{X: o.X, Y: o.Y, Scale: scale, Width: o.Width, Height: o.Height}
}

// initial returns the persisted geometry for name if present, else the defaults.
func (s State) initial(name string, defaults Options) Geometry {
	if s != nil {
		if g, ok := s[name]; ok {
			return Options(g).geometry()
		}
	}
	return defaults.geometry()
}

func clamp(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
