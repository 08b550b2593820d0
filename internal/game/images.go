package game

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/iburimskiy/light-tricks/internal/config"
	"github.com/iburimskiy/light-tricks/internal/style"
)

// glowCore is the colour at the centre of the spotlight before opacity.
var glowCore = color.NRGBA{R: 255, G: 255, B: 150, A: 255}

// Blurred images are generated at a fraction of screen resolution and drawn
// scaled up with linear filtering.
const blurScale = 0.25

// radialGlow renders the spotlight: 80% of glowCore at the centre fading to
// transparent at 70% of the radius, the whole element at GlowOpacity, then
// blurred by blur px. The image carries a 2*blur margin on every side for the
// blur to spread into and is scale times the screen size.
func radialGlow(diameter, blur int, scale float64) *image.NRGBA {
	size := int(math.Round(float64(diameter+4*blur) * scale))
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	r := float64(diameter) / 2 * scale
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / r
			a := 0.8 * config.GlowOpacity * smoothstep(1-dist/0.7)
			px := glowCore
			px.A = uint8(255*a + 0.5)
			img.SetNRGBA(x, y, px)
		}
	}
	return imaging.Blur(img, float64(blur)*scale)
}

// shadowMask is a white rounded rectangle of w x h shrunk by spread and
// blurred by blur px, with a blur-sized margin. It is tinted at draw time.
func shadowMask(w, h int, radius, spread, blur, scale float64) *image.NRGBA {
	sw := (float64(w) - 2*spread + 2*blur) * scale
	sh := (float64(h) - 2*spread + 2*blur) * scale
	img := image.NewNRGBA(image.Rect(0, 0, int(math.Ceil(sw)), int(math.Ceil(sh))))
	m := blur * scale
	iw, ih := sw-2*m, sh-2*m
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			px, py := float64(x)+0.5-m, float64(y)+0.5-m
			if px < 0 || py < 0 || px > iw || py > ih {
				continue
			}
			cov := cornerCoverage(px, py, iw, ih, radius*scale)
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255*cov + 0.5)})
		}
	}
	return imaging.Blur(img, blur/2*scale)
}

// gradientT maps a pixel to its position along a Tailwind gradient direction.
func gradientT(dir string, fx, fy float64) float64 {
	switch dir {
	case "r":
		return fx
	case "l":
		return 1 - fx
	case "b":
		return fy
	case "t":
		return 1 - fy
	case "br":
		return (fx + fy) / 2
	case "tl":
		return 1 - (fx+fy)/2
	case "tr":
		return (fx + 1 - fy) / 2
	case "bl":
		return (1 - fx + fy) / 2
	}
	return 0
}

// bodyImage paints a rounded rectangle with the style's solid or gradient
// background. Pixels outside the corner radius are transparent.
func bodyImage(w, h int, st style.Style, radius float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if !st.Background.OK && !st.Gradient() {
		return img
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := st.Background.Color
			if st.Gradient() {
				fx := (float64(x) + 0.5) / float64(w)
				fy := (float64(y) + 0.5) / float64(h)
				c = style.Lerp(st.Background.Color, st.GradientTo.Color, gradientT(st.GradientDir, fx, fy))
			}
			if cov := cornerCoverage(float64(x)+0.5, float64(y)+0.5, float64(w), float64(h), radius); cov < 1 {
				c = fade(c, cov)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// cornerCoverage is 1 inside the rounded rectangle, 0 outside, with a one
// pixel anti-aliased edge at the corners.
func cornerCoverage(px, py, w, h, radius float64) float64 {
	cx := math.Max(radius, math.Min(px, w-radius))
	cy := math.Max(radius, math.Min(py, h-radius))
	dx, dy := px-cx, py-cy
	if dx == 0 && dy == 0 {
		return 1
	}
	return clamp01(radius - math.Hypot(dx, dy) + 0.5)
}
