// Package game is the ebiten front-end: it feeds pointer and key input to the
// effect controller and draws the scene the controller resolves.
package game

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/light-tricks/internal/config"
	"github.com/iburimskiy/light-tricks/internal/effects"
	"github.com/iburimskiy/light-tricks/internal/sound"
	"github.com/iburimskiy/light-tricks/internal/style"
)

// CuePlayer plays sound cues and reports the output level.
type CuePlayer interface {
	Play(c sound.Cue)
	Level() float64
}

type silentPlayer struct{}

func (silentPlayer) Play(sound.Cue) {}
func (silentPlayer) Level() float64 { return 0 }

// Options configures New. Zero values are usable.
type Options struct {
	Audio  CuePlayer
	Logger *slog.Logger
	Rand   effects.Rand
}

// Game implements ebiten.Game.
type Game struct {
	cfg    *config.Config
	ctrl   *effects.Controller
	audio  CuePlayer
	log    *slog.Logger
	layout screenLayout

	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource

	clock frameClock

	styles map[string]style.Style
	bodies map[string]*ebiten.Image
	glow   *ebiten.Image

	// input
	lastX, lastY int
	hovered      int
	pressed      int
	keyBuf       []ebiten.Key
}

// New builds the game for a validated configuration.
func New(cfg *config.Config, opts Options) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		audio:   opts.Audio,
		log:     opts.Logger,
		layout:  computeLayout(config.WindowWidth, config.WindowHeight, len(cfg.Buttons)),
		styles:  map[string]style.Style{},
		bodies:  map[string]*ebiten.Image{},
		hovered: -1,
		pressed: -1,
	}
	if g.audio == nil {
		g.audio = silentPlayer{}
	}
	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var err error
	if g.regular, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	if g.bold, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	ctrlOpts := []effects.Option{effects.WithHooks(effects.Hooks{
		OnToggle: func(e config.Effect, on bool) {
			g.log.Info("effect toggled", "effect", e, "on", on)
			g.audio.Play(sound.CueToggle)
		},
		OnSparkle: func() {
			g.log.Debug("sparkle burst")
			g.audio.Play(sound.CueSparkle)
		},
		OnDiscoTick: func(string) {
			g.audio.Play(sound.CueDiscoTick)
		},
	})}
	if opts.Rand != nil {
		ctrlOpts = append(ctrlOpts, effects.WithRand(opts.Rand))
	}
	g.ctrl = effects.NewController(cfg, ctrlOpts...)
	return g, nil
}

// Controller exposes the effect state.
func (g *Game) Controller() *effects.Controller { return g.ctrl }

// Close cancels the effect timers.
func (g *Game) Close() {
	g.ctrl.Close()
}

func (g *Game) Update() error {
	if g.handleInput(g.readInput()) {
		return ebiten.Termination
	}
	g.advance(ebiten.TPS())
	return nil
}

// advance moves the effects forward by one tick at the given rate.
func (g *Game) advance(tps int) {
	g.ctrl.Advance(g.clock.tick(tps))
}

// frameClock converts ticks to elapsed time without accumulating the
// truncation of time.Second/tps, so n ticks at tps always sum to n/tps seconds.
type frameClock struct {
	tps    int
	frames int64
}

func (c *frameClock) elapsed() time.Duration {
	return time.Duration(c.frames) * time.Second / time.Duration(c.tps)
}

// tick advances one frame and returns the time it covers.
func (c *frameClock) tick(tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	if tps != c.tps {
		c.tps, c.frames = tps, 0
	}
	prev := c.elapsed()
	c.frames++
	return c.elapsed() - prev
}

func (g *Game) Draw(screen *ebiten.Image) {
	scene := g.ctrl.Scene()
	g.drawBackground(screen, scene)

	if g.ctrl.GlowVisible() {
		g.drawGlow(screen)
	}
	if g.ctrl.SparklesVisible() {
		g.drawSparkles(screen)
	}

	g.drawText(screen, g.cfg.Title, g.bold, config.TitleSize, g.layout.TitleY, scene.Text.Title)
	for i := range g.cfg.Buttons {
		g.drawButton(screen, i)
	}
	g.drawText(screen, scene.Message, g.regular, config.MessageSize, g.layout.MessageY, scene.Text.Message)
	g.drawText(screen, g.cfg.Footer, g.bold, config.FooterSize, g.layout.FooterY, scene.Text.Footer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// styleOf parses and caches a class string. Tokens were validated at load,
// so a failure here only logs.
func (g *Game) styleOf(tokens string) style.Style {
	if s, ok := g.styles[tokens]; ok {
		return s
	}
	s, err := style.Parse(tokens)
	if err != nil {
		g.log.Warn("ignoring style", "tokens", tokens, "err", err)
	}
	g.styles[tokens] = s
	return s
}

func (g *Game) colorOf(tokens string, fallback color.RGBA) color.RGBA {
	if s := g.styleOf(tokens); s.Text.OK {
		return s.Text.Color
	}
	return fallback
}
