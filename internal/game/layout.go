package game

import (
	"math"

	"github.com/iburimskiy/light-tricks/internal/config"
)

type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// scaled grows the rect by f around its centre.
func (r rect) scaled(f float64) rect {
	w, h := r.W*f, r.H*f
	return rect{X: r.X - (w-r.W)/2, Y: r.Y - (h-r.H)/2, W: w, H: h}
}

// screenLayout positions the title, button grid, message and footer.
// Y values are the top of each text line.
type screenLayout struct {
	Width, Height float64
	TitleY        float64
	Buttons       []rect
	MessageY      float64
	FooterY       float64
}

// computeLayout centres the content column vertically, like a flex column
// with min-h-screen.
func computeLayout(width, height, buttons int) screenLayout {
	w, h := float64(width), float64(height)
	gridW := math.Min(config.GridMaxWidth, w-2*config.ButtonPadding)
	colW := (gridW - config.GridGap*float64(config.GridColumns-1)) / config.GridColumns
	rows := (buttons + config.GridColumns - 1) / config.GridColumns
	gridH := 0.0
	if rows > 0 {
		gridH = float64(rows)*config.ButtonHeight + float64(rows-1)*config.GridGap
	}

	total := config.TitleSize + config.TitleMargin + gridH +
		config.MessageMargin + config.MessageSize + config.FooterMargin + config.FooterSize
	top := math.Max(config.ButtonPadding, (h-total)/2)

	l := screenLayout{Width: w, Height: h, TitleY: top}
	gridTop := top + config.TitleSize + config.TitleMargin
	left := (w - gridW) / 2
	for i := 0; i < buttons; i++ {
		col, row := i%config.GridColumns, i/config.GridColumns
		l.Buttons = append(l.Buttons, rect{
			X: left + float64(col)*(colW+config.GridGap),
			Y: gridTop + float64(row)*(config.ButtonHeight+config.GridGap),
			W: colW,
			H: config.ButtonHeight,
		})
	}
	l.MessageY = gridTop + gridH + config.MessageMargin
	l.FooterY = l.MessageY + config.MessageSize + config.FooterMargin
	return l
}

// hitTest returns the index of the button under (x, y), or -1.
func (l screenLayout) hitTest(x, y float64) int {
	for i, r := range l.Buttons {
		if r.contains(x, y) {
			return i
		}
	}
	return -1
}
