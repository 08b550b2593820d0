// Package effects holds the effect-state store and the rendering rules that
// map active effects to background, message, text tone and button looks.
//
// Everything here is driven from a single goroutine (the game loop); nothing
// is safe for concurrent use.
package effects

import (
	"github.com/iburimskiy/light-tricks/internal/config"
)

// ActiveEffects maps an effect to its flag. Missing keys read as false.
type ActiveEffects map[config.Effect]bool

// Clone returns an independent copy.
func (a ActiveEffects) Clone() ActiveEffects {
	out := make(ActiveEffects, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Tone selects the text styling of the title, message and footer.
type Tone int

const (
	ToneLightOnDark Tone = iota
	ToneDarkOnLight
)

func (t Tone) String() string {
	if t == ToneDarkOnLight {
		return "dark-on-light"
	}
	return "light-on-dark"
}

// Scene is the resolved full-screen look for one frame.
type Scene struct {
	// Background holds class tokens; empty while Fill is set.
	Background string
	// Fill is a literal "#rrggbb" colour that overrides Background (disco).
	Fill    string
	Message string
	Tone    Tone
	Text    config.Tone
}

// sceneRule binds an effect to its background. A nil background means the
// effect paints a literal fill instead of a class background.
type sceneRule struct {
	effect     config.Effect
	background func(*config.Config) string
}

func buttonBackground(e config.Effect) func(*config.Config) string {
	return func(cfg *config.Config) string {
		if b, ok := cfg.ButtonFor(e); ok {
			return b.BackgroundColor
		}
		return ""
	}
}

// sceneRules is evaluated in order; the first active effect wins.
var sceneRules = []sceneRule{
	{effect: config.EffectDarkMode, background: buttonBackground(config.EffectDarkMode)},
	{effect: config.EffectDisco},
	{effect: config.EffectSpotlight, background: buttonBackground(config.EffectSpotlight)},
}

// ResolveScene applies the priority rules to the active effects.
func ResolveScene(cfg *config.Config, active ActiveEffects, discoColor string) Scene {
	tone := ResolveTone(active)
	s := Scene{Tone: tone, Text: cfg.Tones.Light}
	if tone == ToneDarkOnLight {
		s.Text = cfg.Tones.Dark
	}

	for _, r := range sceneRules {
		if !active[r.effect] {
			continue
		}
		if r.background == nil {
			s.Fill = discoColor
		} else {
			s.Background = r.background(cfg)
		}
		s.Message = cfg.Message(string(r.effect))
		return s
	}

	s.Background = cfg.DefaultBackground
	s.Message = cfg.Message(config.MessageDefault)
	return s
}

// ResolveTone is light-on-dark when dark mode is on or when neither the
// spotlight nor disco lightens the background.
func ResolveTone(active ActiveEffects) Tone {
	if active[config.EffectDarkMode] || (!active[config.EffectSpotlight] && !active[config.EffectDisco]) {
		return ToneLightOnDark
	}
	return ToneDarkOnLight
}

// Visual is the resolved look of one button.
type Visual struct {
	Text      string
	Icon      string
	BgColor   string
	TextColor string
	Shadow    string
	On        bool
}

// ResolveButton picks the on/off state of a stateful button and falls back to
// the button's own fields for anything the state leaves empty. Stateless
// buttons use their own fields as is.
func ResolveButton(b *config.Button, active ActiveEffects) Visual {
	v := Visual{
		Text:      b.Label,
		Icon:      b.Icon,
		BgColor:   b.BgColor,
		TextColor: b.TextColor,
		Shadow:    b.Shadow,
	}
	if b.States == nil {
		return v
	}

	st := b.States.Off
	if active[b.Effect] {
		st = b.States.On
		v.On = true
	}
	pick := func(state, fallback string) string {
		if state != "" {
			return state
		}
		return fallback
	}
	v.Text = pick(st.Text, v.Text)
	v.Icon = pick(st.Icon, v.Icon)
	v.BgColor = pick(st.BgColor, v.BgColor)
	v.TextColor = pick(st.TextColor, v.TextColor)
	v.Shadow = pick(st.Shadow, v.Shadow)
	return v
}
