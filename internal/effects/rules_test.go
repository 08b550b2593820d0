package effects

import (
	"testing"

	"github.com/iburimskiy/light-tricks/internal/config"
)

func TestResolveScenePriority(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		active     ActiveEffects
		background string
		fill       string
		message    string
		tone       Tone
	}{
		{
			name:       "nothing active",
			active:     ActiveEffects{},
			background: "bg-gray-800",
			message:    "Click a button to start! 🚀",
			tone:       ToneLightOnDark,
		},
		{
			name:       "all flags false",
			active:     ActiveEffects{config.EffectSpotlight: false},
			background: "bg-gray-800",
			message:    "Click a button to start! 🚀",
			tone:       ToneLightOnDark,
		},
		{
			name:       "spotlight",
			active:     ActiveEffects{config.EffectSpotlight: true},
			background: "bg-yellow-50",
			message:    "Move your mouse around to control the spotlight! ✨",
			tone:       ToneDarkOnLight,
		},
		{
			name:    "disco paints a literal fill",
			active:  ActiveEffects{config.EffectDisco: true},
			fill:    "#123456",
			message: "Feel the rhythm! 🎵",
			tone:    ToneDarkOnLight,
		},
		{
			name:       "dark mode",
			active:     ActiveEffects{config.EffectDarkMode: true},
			background: "bg-gray-900",
			message:    "Peaceful night mode 🌙",
			tone:       ToneLightOnDark,
		},
		{
			name:       "dark mode beats spotlight",
			active:     ActiveEffects{config.EffectDarkMode: true, config.EffectSpotlight: true},
			background: "bg-gray-900",
			message:    "Peaceful night mode 🌙",
			tone:       ToneLightOnDark,
		},
		{
			name:    "disco beats spotlight",
			active:  ActiveEffects{config.EffectDisco: true, config.EffectSpotlight: true},
			fill:    "#123456",
			message: "Feel the rhythm! 🎵",
			tone:    ToneDarkOnLight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ResolveScene(cfg, tt.active, "#123456")
			if s.Background != tt.background {
				t.Errorf("Background = %q, want %q", s.Background, tt.background)
			}
			if s.Fill != tt.fill {
				t.Errorf("Fill = %q, want %q", s.Fill, tt.fill)
			}
			if s.Message != tt.message {
				t.Errorf("Message = %q, want %q", s.Message, tt.message)
			}
			if s.Tone != tt.tone {
				t.Errorf("Tone = %v, want %v", s.Tone, tt.tone)
			}
			wantText := cfg.Tones.Light
			if tt.tone == ToneDarkOnLight {
				wantText = cfg.Tones.Dark
			}
			if s.Text != wantText {
				t.Errorf("Text = %+v, want %+v", s.Text, wantText)
			}
		})
	}
}

func TestResolveButton(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	mode, _ := cfg.Button("dark-mode")
	sparkles, _ := cfg.Button("sparkles")

	off := ResolveButton(mode, ActiveEffects{})
	if off.Text != "Day Mode" || off.Icon != "Sun" || off.On {
		t.Errorf("day visual = %+v", off)
	}
	on := ResolveButton(mode, ActiveEffects{config.EffectDarkMode: true})
	if on.Text != "Night Mode" || on.Icon != "Moon" || on.BgColor != "bg-indigo-900" || !on.On {
		t.Errorf("night visual = %+v", on)
	}

	for _, active := range []ActiveEffects{{}, {config.EffectSparkles: true}} {
		v := ResolveButton(sparkles, active)
		if v.Text != "Magic Sparkles" || v.Icon != "Sparkles" || v.Shadow != "hover:shadow-pink-500/50" {
			t.Errorf("sparkles visual = %+v", v)
		}
	}
}

func TestResolveButtonFallsBackPerField(t *testing.T) {
	b := &config.Button{
		ID:        "lamp",
		Label:     "Lamp",
		Icon:      "Lightbulb",
		Effect:    config.EffectSpotlight,
		BgColor:   "bg-gray-700",
		TextColor: "text-white",
		Shadow:    "shadow-pink-500",
		States: &config.States{
			On: config.ButtonState{BgColor: "bg-yellow-400"},
		},
	}

	v := ResolveButton(b, ActiveEffects{config.EffectSpotlight: true})
	want := Visual{Text: "Lamp", Icon: "Lightbulb", BgColor: "bg-yellow-400", TextColor: "text-white", Shadow: "shadow-pink-500", On: true}
	if v != want {
		t.Errorf("ResolveButton = %+v, want %+v", v, want)
	}
}

func TestToneString(t *testing.T) {
	if ToneLightOnDark.String() != "light-on-dark" || ToneDarkOnLight.String() != "dark-on-light" {
		t.Error("unexpected Tone strings")
	}
}
