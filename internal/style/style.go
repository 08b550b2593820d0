// Package style resolves utility-class style tokens (the "bg-yellow-400
// text-gray-900 shadow-yellow-400/50" strings found in the configuration)
// into concrete colours for the renderer.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Paint is an optional colour. OK is false when the token string did not set it.
type Paint struct {
	Color color.RGBA
	OK    bool
}

// Style is the parsed form of one class string.
type Style struct {
	// Background is the solid fill, or the gradient start when GradientDir is set.
	Background  Paint
	GradientTo  Paint
	GradientDir string

	Text        Paint
	Shadow      Paint
	HoverShadow Paint
}

// Gradient reports whether the background is a two-stop gradient.
func (s Style) Gradient() bool {
	return s.GradientDir != ""
}

// Merge returns s with every unset field taken from fallback.
func (s Style) Merge(fallback Style) Style {
	out := s
	if !out.Background.OK && !out.Gradient() {
		out.Background = fallback.Background
		out.GradientTo = fallback.GradientTo
		out.GradientDir = fallback.GradientDir
	}
	if !out.Text.OK {
		out.Text = fallback.Text
	}
	if !out.Shadow.OK {
		out.Shadow = fallback.Shadow
	}
	if !out.HoverShadow.OK {
		out.HoverShadow = fallback.HoverShadow
	}
	return out
}

var gradientDirs = map[string]bool{
	"t": true, "tr": true, "r": true, "br": true,
	"b": true, "bl": true, "l": true, "tl": true,
}

// Parse parses a whitespace separated class string. The empty string is a
// valid, empty style.
func Parse(classes string) (Style, error) {
	var s Style
	for _, tok := range strings.Fields(classes) {
		if err := s.apply(tok); err != nil {
			return Style{}, err
		}
	}
	return s, nil
}

// MustParse is Parse for tokens known to be valid; it panics otherwise.
func MustParse(classes string) Style {
	s, err := Parse(classes)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Style) apply(tok string) error {
	hover := false
	if rest, ok := strings.CutPrefix(tok, "hover:"); ok {
		hover = true
		tok = rest
	}

	if dir, ok := strings.CutPrefix(tok, "bg-gradient-to-"); ok {
		if hover || !gradientDirs[dir] {
			return fmt.Errorf("unsupported gradient token %q", tok)
		}
		s.GradientDir = dir
		return nil
	}

	utility, value, ok := strings.Cut(tok, "-")
	if !ok {
		return fmt.Errorf("unknown style token %q", tok)
	}
	if hover && utility != "shadow" {
		return fmt.Errorf("hover variant only supported for shadow, got %q", tok)
	}

	c, err := ParseColor(value)
	if err != nil {
		return fmt.Errorf("style token %q: %w", tok, err)
	}
	p := Paint{Color: c, OK: true}

	switch utility {
	case "bg", "from":
		s.Background = p
	case "to":
		s.GradientTo = p
	case "text":
		s.Text = p
	case "shadow":
		if hover {
			s.HoverShadow = p
		} else {
			s.Shadow = p
		}
	default:
		return fmt.Errorf("unknown style utility %q in %q", utility, tok)
	}
	return nil
}

// ParseColor resolves a colour value: a palette name ("yellow-400", "white"),
// an arbitrary value ("[#1a1b26]") or a bare hex string ("#ff00ff"). An
// optional "/NN" suffix sets the opacity in percent.
func ParseColor(value string) (color.RGBA, error) {
	alpha := 1.0
	if base, pct, ok := strings.Cut(value, "/"); ok {
		n, err := strconv.Atoi(pct)
		if err != nil || n < 0 || n > 100 {
			return color.RGBA{}, fmt.Errorf("invalid opacity %q", pct)
		}
		alpha = float64(n) / 100
		value = base
	}

	if value == "transparent" {
		return color.RGBA{}, nil
	}

	hex := value
	switch {
	case strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]"):
		hex = value[1 : len(value)-1]
	case strings.HasPrefix(value, "#"):
	default:
		p, ok := palette[value]
		if !ok {
			return color.RGBA{}, fmt.Errorf("unknown colour %q", value)
		}
		hex = p
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	return premultiplied(c, alpha), nil
}

// HexColor parses a "#rrggbb" string into an opaque colour.
func HexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	return premultiplied(c, 1), nil
}

// Lerp blends two colours in RGB space; t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// premultiplied converts to color.RGBA, which stores alpha-premultiplied channels.
func premultiplied(c colorful.Color, alpha float64) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{
		R: uint8(float64(r)*alpha + 0.5),
		G: uint8(float64(g)*alpha + 0.5),
		B: uint8(float64(b)*alpha + 0.5),
		A: uint8(255*alpha + 0.5),
	}
}
