package geom

import (
	"math/rand"
	"time"
)

// Config holds the logical coordinate space that upstream drawing commands
// are expressed in. It is distinct from the device canvas size, which is
// supplied per call.
type Config struct {
	LogicalWidth  float64
	LogicalHeight float64
}

const (
	DefaultLogicalWidth  = 1000
	DefaultLogicalHeight = 700
)

func (c Config) withDefaults() Config {
	if c.LogicalWidth <= 0 {
		c.LogicalWidth = DefaultLogicalWidth
	}
	if c.LogicalHeight <= 0 {
		c.LogicalHeight = DefaultLogicalHeight
	}
	return c
}

// Engine synthesizes whiteboard geometry. It is stateless apart from the
// configured logical space and the injected random source used for stroke
// jitter; with a fixed seed all outputs are reproducible.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// NewEngine creates an engine. A nil rng gets a time-seeded source.
func NewEngine(cfg Config, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{cfg: cfg.withDefaults(), rng: rng}
}

// NormalizeCoordinates rescales a point from the logical space into device
// pixel space for the given canvas size.
func (e *Engine) NormalizeCoordinates(x, y, canvasW, canvasH float64) Point {
	return Point{
		X: x / e.cfg.LogicalWidth * canvasW,
		Y: y / e.cfg.LogicalHeight * canvasH,
	}
}

// LogicalSpace reports the configured logical width and height.
func (e *Engine) LogicalSpace() (w, h float64) {
	return e.cfg.LogicalWidth, e.cfg.LogicalHeight
}

// jitter returns a uniform offset in [-amount, amount].
func (e *Engine) jitter(amount float64) float64 {
	return (e.rng.Float64()*2 - 1) * amount
}
