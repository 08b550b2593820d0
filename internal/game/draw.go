package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/light-tricks/internal/config"
	"github.com/iburimskiy/light-tricks/internal/effects"
	"github.com/iburimskiy/light-tricks/internal/icons"
	"github.com/iburimskiy/light-tricks/internal/style"
)

const cornerRadius = 16 // rounded-2xl

// shadow-2xl: 0 25px 50px -12px
const (
	shadowOffset = 25
	shadowBlur   = 50
	shadowSpread = 12
)

var (
	white        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	sparkleColor = style.MustParse("text-yellow-400").Text.Color
	// shadow-2xl: rgb(0 0 0 / 0.25)
	defaultShadow = color.RGBA{A: 64}
)

func (g *Game) drawBackground(screen *ebiten.Image, scene effects.Scene) {
	if scene.Fill != "" {
		c, err := style.HexColor(scene.Fill)
		if err == nil {
			screen.Fill(c)
			return
		}
		g.log.Warn("bad disco colour", "color", scene.Fill, "err", err)
	}

	st := g.styleOf(scene.Background)
	if st.Gradient() {
		img := g.body(st, config.WindowWidth, config.WindowHeight, 0)
		screen.DrawImage(img, nil)
		return
	}
	if st.Background.OK {
		screen.Fill(st.Background.Color)
	}
}

func (g *Game) drawGlow(screen *ebiten.Image) {
	if g.glow == nil {
		g.glow = ebiten.NewImageFromImage(radialGlow(config.GlowDiameter, config.GlowBlur, blurScale))
	}
	origin := g.ctrl.GlowOrigin()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(1/blurScale, 1/blurScale)
	op.GeoM.Translate(origin.X-2*config.GlowBlur, origin.Y-2*config.GlowBlur)
	screen.DrawImage(g.glow, op)
}

// sparkleFrame is the "ping" animation: before its delay a sparkle rests at
// full size, then each period it grows to double size while fading out.
func sparkleFrame(s effects.Sparkle, age time.Duration) (scale, alpha float64) {
	t := age - s.Delay
	if t < 0 {
		return 1, 1
	}
	p := float64(t%config.SparklePeriod) / float64(config.SparklePeriod)
	return 1 + p, 1 - p
}

func (g *Game) drawSparkles(screen *ebiten.Image) {
	shapes, _ := icons.Lookup("Sparkles")
	boost := 1 + 0.5*g.audio.Level()
	age := g.ctrl.SparkleAge()
	for _, s := range g.ctrl.Sparkles() {
		scale, alpha := sparkleFrame(s, age)
		size := config.SparkleIconSize * scale * boost
		x := s.X*float64(config.WindowWidth) - size/2
		y := s.Y*float64(config.WindowHeight) - size/2
		drawIcon(screen, shapes, x, y, size, fade(sparkleColor, alpha), color.RGBA{})
	}
}

func (g *Game) drawButton(screen *ebiten.Image, i int) {
	b := &g.cfg.Buttons[i]
	v := g.ctrl.ButtonVisual(b)
	st := g.styleOf(v.BgColor).Merge(g.styleOf(v.Shadow))

	base := g.layout.Buttons[i]
	scale := 1.0
	if g.hovered == i {
		scale = config.HoverScale
	}
	r := base.scaled(scale)

	shadow := defaultShadow
	if st.Shadow.OK {
		shadow = st.Shadow.Color
	}
	if g.hovered == i && st.HoverShadow.OK {
		shadow = st.HoverShadow.Color
	}
	g.drawShadow(screen, base, scale, shadow)

	body := g.body(st, int(base.W), int(base.H), cornerRadius)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(body, op)

	fg := g.colorOf(v.TextColor, white)
	if shapes, ok := icons.Lookup(v.Icon); ok {
		size := config.IconSize * scale
		ix := r.X + (r.W-size)/2
		iy := r.Y + config.ButtonPadding*scale
		drawIcon(screen, shapes, ix, iy, size, fg, st.Background.Color)
	}

	face := &text.GoTextFace{Source: g.bold, Size: config.ButtonTextSize * scale}
	top := r.Y + (config.ButtonPadding+config.IconSize+12)*scale
	drawCentered(screen, printable(v.Text), face, r.X+r.W/2, top, fg)
}

// drawShadow draws the blurred drop shadow of a button rect at a hover scale.
func (g *Game) drawShadow(screen *ebiten.Image, base rect, scale float64, c color.RGBA) {
	w, h := int(base.W), int(base.H)
	key := fmt.Sprintf("shadow|%dx%d", w, h)
	mask, ok := g.bodies[key]
	if !ok {
		mask = ebiten.NewImageFromImage(shadowMask(w, h, cornerRadius, shadowSpread, shadowBlur, blurScale))
		g.bodies[key] = mask
	}

	r := base.scaled(scale)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(scale/blurScale, scale/blurScale)
	op.GeoM.Translate(r.X+(shadowSpread-shadowBlur)*scale, r.Y+(shadowSpread-shadowBlur+shadowOffset)*scale)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(mask, op)
}

// body returns a cached rendering of a style at a size.
func (g *Game) body(st style.Style, w, h int, radius float64) *ebiten.Image {
	key := fmt.Sprintf("%v|%v|%s|%dx%d|%v", st.Background, st.GradientTo, st.GradientDir, w, h, radius)
	if img, ok := g.bodies[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(bodyImage(w, h, st, radius))
	g.bodies[key] = img
	return img
}

func (g *Game) drawText(screen *ebiten.Image, s string, src *text.GoTextFaceSource, size, top float64, tokens string) {
	face := &text.GoTextFace{Source: src, Size: size}
	drawCentered(screen, printable(s), face, float64(config.WindowWidth)/2, top, g.colorOf(tokens, white))
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, cx, top float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, top)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// drawIcon renders registry shapes into a size×size box at (x, y). Knockout
// shapes are painted with the surface colour.
func drawIcon(screen *ebiten.Image, shapes []icons.Shape, x, y, size float64, fg, surface color.RGBA) {
	px := func(v float64) float32 { return float32(x + v*size) }
	py := func(v float64) float32 { return float32(y + v*size) }
	sz := func(v float64) float32 { return float32(v * size) }

	for _, s := range shapes {
		c := fg
		if s.Knockout {
			c = surface
		}
		switch s.Kind {
		case icons.Disc:
			vector.DrawFilledCircle(screen, px(s.X), py(s.Y), sz(s.R), c, true)
		case icons.Ring:
			vector.StrokeCircle(screen, px(s.X), py(s.Y), sz(s.R), sz(s.W), c, true)
		case icons.Segment:
			vector.StrokeLine(screen, px(s.X), py(s.Y), px(s.X2), py(s.Y2), sz(s.W), c, true)
			// round joins
			vector.DrawFilledCircle(screen, px(s.X), py(s.Y), sz(s.W)/2, c, true)
			vector.DrawFilledCircle(screen, px(s.X2), py(s.Y2), sz(s.W)/2, c, true)
		case icons.Box:
			vector.DrawFilledRect(screen, px(s.X), py(s.Y), sz(s.X2-s.X), sz(s.Y2-s.Y), c, true)
		}
	}
}
