// Package icons is the icon registry: each icon name maps to a small list of
// vector primitives laid out in a unit box (0..1 on both axes, y down). The
// renderer scales them to the requested size.
package icons

import (
	"math"
	"sort"
)

// Kind is the primitive type of a Shape.
type Kind int

const (
	// Disc is a filled circle at (X, Y) with radius R.
	Disc Kind = iota
	// Ring is a stroked circle at (X, Y) with radius R and stroke width W.
	Ring
	// Segment is a stroked line from (X, Y) to (X2, Y2) with width W.
	Segment
	// Box is a filled rectangle from (X, Y) to (X2, Y2).
	Box
)

// Shape is one drawing primitive in unit coordinates.
type Shape struct {
	Kind   Kind
	X, Y   float64
	X2, Y2 float64
	R, W   float64

	// Knockout shapes are painted in the surface colour behind the icon.
	Knockout bool
}

type point struct{ x, y float64 }

var registry = map[string][]Shape{
	"Lightbulb": lightbulb(),
	"Sparkles":  sparkles(),
	"Zap":       zap(),
	"Moon":      moon(),
	"Sun":       sun(),
	"Star":      star(),
	"Flame":     flame(),
	"Radio":     radio(),
}

// Lookup returns the shapes for a named icon.
func Lookup(name string) ([]Shape, bool) {
	s, ok := registry[name]
	return s, ok
}

// Has reports whether name resolves in the registry.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names lists registered icons, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

const stroke = 0.07

func polyline(w float64, pts ...point) []Shape {
	out := make([]Shape, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		out = append(out, Shape{Kind: Segment, X: pts[i-1].x, Y: pts[i-1].y, X2: pts[i].x, Y2: pts[i].y, W: w})
	}
	return out
}

func arc(cx, cy, r, from, to float64, steps int) []point {
	pts := make([]point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := from + (to-from)*float64(i)/float64(steps)
		pts = append(pts, point{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}

func sun() []Shape {
	shapes := []Shape{{Kind: Disc, X: 0.5, Y: 0.5, R: 0.18}}
	for i := 0; i < 8; i++ {
		c, s := math.Cos(float64(i)*math.Pi/4), math.Sin(float64(i)*math.Pi/4)
		shapes = append(shapes, Shape{Kind: Segment, X: 0.5 + 0.29*c, Y: 0.5 + 0.29*s, X2: 0.5 + 0.43*c, Y2: 0.5 + 0.43*s, W: stroke})
	}
	return shapes
}

func moon() []Shape {
	return []Shape{
		{Kind: Disc, X: 0.48, Y: 0.52, R: 0.36},
		{Kind: Disc, X: 0.66, Y: 0.36, R: 0.3, Knockout: true},
	}
}

func lightbulb() []Shape {
	shapes := []Shape{
		{Kind: Ring, X: 0.5, Y: 0.4, R: 0.27, W: stroke},
		{Kind: Box, X: 0.37, Y: 0.7, X2: 0.63, Y2: 0.76},
		{Kind: Box, X: 0.41, Y: 0.8, X2: 0.59, Y2: 0.86},
	}
	return append(shapes, polyline(0.05, point{0.42, 0.67}, point{0.45, 0.45}, point{0.5, 0.52}, point{0.55, 0.45}, point{0.58, 0.67})...)
}

func zap() []Shape {
	return polyline(stroke,
		point{0.58, 0.08}, point{0.24, 0.56}, point{0.5, 0.56},
		point{0.42, 0.92}, point{0.76, 0.44}, point{0.5, 0.44},
		point{0.58, 0.08},
	)
}

func fourPoint(cx, cy, outer, inner, w float64) []Shape {
	return polyline(w,
		point{cx, cy - outer}, point{cx + inner, cy - inner},
		point{cx + outer, cy}, point{cx + inner, cy + inner},
		point{cx, cy + outer}, point{cx - inner, cy + inner},
		point{cx - outer, cy}, point{cx - inner, cy - inner},
		point{cx, cy - outer},
	)
}

func sparkles() []Shape {
	shapes := fourPoint(0.42, 0.56, 0.34, 0.08, stroke)
	shapes = append(shapes, fourPoint(0.8, 0.2, 0.14, 0.04, 0.05)...)
	return append(shapes, Shape{Kind: Disc, X: 0.8, Y: 0.78, R: 0.05})
}

func star() []Shape {
	pts := make([]point, 0, 11)
	for i := 0; i <= 10; i++ {
		r := 0.44
		if i%2 == 1 {
			r = 0.18
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, point{0.5 + r*math.Cos(a), 0.53 + r*math.Sin(a)})
	}
	return polyline(stroke, pts...)
}

func flame() []Shape {
	outer := append(arc(0.5, 0.62, 0.28, math.Pi*0.05, math.Pi*0.95, 8), point{0.28, 0.4}, point{0.45, 0.1}, point{0.52, 0.34}, point{0.64, 0.2}, point{0.77, 0.5})
	outer = append(outer, outer[0])
	return polyline(stroke, outer...)
}

func radio() []Shape {
	shapes := []Shape{{Kind: Disc, X: 0.5, Y: 0.5, R: 0.08}}
	for _, r := range []float64{0.2, 0.36} {
		shapes = append(shapes, polyline(0.06, arc(0.5, 0.5, r, -math.Pi/4, math.Pi/4, 6)...)...)
		shapes = append(shapes, polyline(0.06, arc(0.5, 0.5, r, math.Pi*3/4, math.Pi*5/4, 6)...)...)
	}
	return shapes
}
