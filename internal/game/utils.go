package game

import (
	"image/color"
	"strings"
	"unicode"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothstep eases t in [0, 1].
func smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// fade scales a premultiplied colour's opacity by f.
func fade(c color.RGBA, f float64) color.RGBA {
	f = clamp01(f)
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: uint8(float64(c.A)*f + 0.5),
	}
}

// printable drops symbols the bundled Go fonts have no glyphs for (emoji,
// dingbats, variation selectors) and tidies the leftover spacing.
func printable(s string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 0x2600 && r <= 0x27bf, r >= 0x1f000 && r <= 0x1faff, r >= 0xfe00 && r <= 0xfe0f, r == 0x200d:
			return -1
		case !unicode.IsPrint(r):
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(out), " ")
}
