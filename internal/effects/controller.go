package effects

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/light-tricks/internal/config"
)

// Rand is the random source used for disco colours and sparkle placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Point is a pointer position in window pixels.
type Point struct {
	X, Y float64
}

// Sparkle is one icon of a burst. X and Y are fractions of the window size.
type Sparkle struct {
	X, Y  float64
	Delay time.Duration
}

// Hooks are optional callbacks fired after the corresponding state change.
type Hooks struct {
	OnToggle    func(e config.Effect, on bool)
	OnSparkle   func()
	OnDiscoTick func(color string)
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithHooks installs state-change callbacks.
func WithHooks(h Hooks) Option {
	return func(c *Controller) { c.hooks = h }
}

// Controller owns the effect state and both timers. Advance drives time.
type Controller struct {
	cfg   *config.Config
	rng   Rand
	hooks Hooks

	active  ActiveEffects
	pointer Point

	sparklesVisible bool
	sparkles        []Sparkle
	sparkleAge      time.Duration
	sparkleHide     *Timer

	discoColor string
	disco      *Timer

	closed bool
}

// NewController creates a controller with empty effect state.
func NewController(cfg *config.Config, opts ...Option) *Controller {
	c := &Controller{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		active:     ActiveEffects{},
		discoColor: config.DefaultDiscoColor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Click handles a press on a configured button.
func (c *Controller) Click(b *config.Button) {
	if c.closed || b == nil {
		return
	}

	switch {
	case b.Effect == config.EffectSparkles:
		c.burst(b)
	case b.Stateful():
		on := !c.active[b.Effect]
		c.active = ActiveEffects{b.Effect: on}
		c.syncDisco()
		if c.hooks.OnToggle != nil {
			c.hooks.OnToggle(b.Effect, on)
		}
	}
}

// ClickID clicks the button with the given id. It reports whether one exists.
func (c *Controller) ClickID(id string) bool {
	b, ok := c.cfg.Button(id)
	if !ok {
		return false
	}
	c.Click(b)
	return true
}

func (c *Controller) burst(b *config.Button) {
	n := b.SparkleCount()
	c.sparkles = make([]Sparkle, n)
	for i := range c.sparkles {
		c.sparkles[i] = Sparkle{
			X:     c.rng.Float64(),
			Y:     c.rng.Float64(),
			Delay: time.Duration(c.rng.Float64() * float64(config.SparkleMaxDelay)),
		}
	}
	c.sparklesVisible = true
	c.sparkleAge = 0

	c.sparkleHide.Stop()
	c.sparkleHide = AfterFunc(b.DurationValue(), func() {
		c.sparklesVisible = false
		c.sparkleHide = nil
	})

	if c.hooks.OnSparkle != nil {
		c.hooks.OnSparkle()
	}
}

// syncDisco moves the disco state machine between Idle and Cycling to match
// the disco flag.
func (c *Controller) syncDisco() {
	on := c.active[config.EffectDisco]
	switch {
	case on && c.disco == nil:
		b, ok := c.cfg.ButtonFor(config.EffectDisco)
		if !ok {
			b = &config.Button{}
		}
		palette := b.Palette()
		c.disco = EveryFunc(b.IntervalDuration(), func() {
			c.discoColor = palette[c.rng.Intn(len(palette))]
			if c.hooks.OnDiscoTick != nil {
				c.hooks.OnDiscoTick(c.discoColor)
			}
		})
	case !on && c.disco != nil:
		c.disco.Stop()
		c.disco = nil
	}
}

// PointerMove records the pointer position while the spotlight is on.
func (c *Controller) PointerMove(x, y float64) {
	if c.closed || !c.active[config.EffectSpotlight] {
		return
	}
	c.pointer = Point{X: x, Y: y}
}

// Advance moves both timers forward by dt.
func (c *Controller) Advance(dt time.Duration) {
	if c.closed || dt <= 0 {
		return
	}
	if c.sparklesVisible {
		c.sparkleAge += dt
	}
	c.sparkleHide.Advance(dt)
	c.disco.Advance(dt)
}

// SetActive replaces the effect state directly. Intended for tests and for
// restoring a known state; the disco timer follows the new flags.
func (c *Controller) SetActive(a ActiveEffects) {
	if c.closed {
		return
	}
	c.active = a.Clone()
	c.syncDisco()
}

// Close cancels every timer. The controller ignores input afterwards.
func (c *Controller) Close() {
	c.sparkleHide.Stop()
	c.sparkleHide = nil
	c.disco.Stop()
	c.disco = nil
	c.closed = true
}

// Active returns a copy of the effect flags.
func (c *Controller) Active() ActiveEffects { return c.active.Clone() }

// IsActive reports one flag.
func (c *Controller) IsActive(e config.Effect) bool { return c.active[e] }

// Pointer is the last tracked pointer position.
func (c *Controller) Pointer() Point { return c.pointer }

// SparklesVisible reports whether a burst is on screen.
func (c *Controller) SparklesVisible() bool { return c.sparklesVisible }

// Sparkles returns the current burst placement.
func (c *Controller) Sparkles() []Sparkle { return c.sparkles }

// SparkleAge is the time since the current burst started.
func (c *Controller) SparkleAge() time.Duration { return c.sparkleAge }

// DiscoColor is the most recently rolled disco colour.
func (c *Controller) DiscoColor() string { return c.discoColor }

// DiscoRunning reports whether the disco timer is armed.
func (c *Controller) DiscoRunning() bool { return c.disco.Active() }

// Scene resolves the full-screen look from the current state.
func (c *Controller) Scene() Scene {
	return ResolveScene(c.cfg, c.active, c.discoColor)
}

// ButtonVisual resolves the look of one button from the current state.
func (c *Controller) ButtonVisual(b *config.Button) Visual {
	return ResolveButton(b, c.active)
}

// GlowVisible reports whether the spotlight glow is drawn. Disco's fill
// takes precedence over it.
func (c *Controller) GlowVisible() bool {
	return c.active[config.EffectSpotlight] && !c.active[config.EffectDisco]
}

// GlowOrigin is the top-left corner of the glow, placing the pointer at its centre.
func (c *Controller) GlowOrigin() Point {
	const half = config.GlowDiameter / 2
	return Point{X: c.pointer.X - half, Y: c.pointer.Y - half}
}
