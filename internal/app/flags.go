package app

import (
	"flag"

	"hudedit/internal/store"
)

// Config represents the command-line parameters for the application.
type Config struct {
	StatePath  string
	Width      int
	Height     int
	TPS        int
	Background bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{StatePath: store.DefaultPath, Width: 854, Height: 480, TPS: 60, Background: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.StatePath, "state", c.StatePath, "file holding saved HUD geometry")
	fs.IntVar(&c.Width, "width", c.Width, "logical screen width")
	fs.IntVar(&c.Height, "height", c.Height, "logical screen height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Background, "background", c.Background, "dim the screen while editing")
}
