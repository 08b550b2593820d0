package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputState is one frame of input.
type inputState struct {
	X, Y         int
	Moved        bool
	JustPressed  bool
	JustReleased bool
	Keys         []ebiten.Key // pressed this frame
}

// readInput polls ebiten for the current frame.
func (g *Game) readInput() inputState {
	x, y := ebiten.CursorPosition()
	in := inputState{
		X:            x,
		Y:            y,
		Moved:        x != g.lastX || y != g.lastY,
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Keys:         inpututil.AppendJustPressedKeys(g.keyBuf[:0]),
	}
	g.keyBuf = in.Keys
	return in
}

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// handleInput applies one frame of input to the controller. It reports
// whether the user asked to quit.
func (g *Game) handleInput(in inputState) bool {
	if in.Moved {
		g.lastX, g.lastY = in.X, in.Y
		g.ctrl.PointerMove(float64(in.X), float64(in.Y))
	}

	g.hovered = g.layout.hitTest(float64(in.X), float64(in.Y))

	// A click is a press and release over the same button.
	if in.JustPressed {
		g.pressed = g.hovered
	}
	if in.JustReleased {
		if g.pressed >= 0 && g.pressed == g.hovered {
			g.click(g.pressed)
		}
		g.pressed = -1
	}

	for _, k := range in.Keys {
		switch k {
		case ebiten.KeyEscape, ebiten.KeyQ:
			return true
		}
		for i, dk := range digitKeys {
			if k == dk {
				g.click(i)
			}
		}
	}
	return false
}

func (g *Game) click(i int) {
	if i < 0 || i >= len(g.cfg.Buttons) {
		return
	}
	b := &g.cfg.Buttons[i]
	g.log.Debug("button clicked", "id", b.ID, "effect", b.Effect)
	g.ctrl.Click(b)
}
