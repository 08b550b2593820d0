package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}

	if cfg.Title != "✨ Light & Tricks ✨" {
		t.Errorf("title = %q", cfg.Title)
	}
	if len(cfg.Buttons) != 4 {
		t.Fatalf("expected 4 buttons, got %d", len(cfg.Buttons))
	}

	disco, ok := cfg.ButtonFor(EffectDisco)
	if !ok {
		t.Fatal("no disco button")
	}
	if disco.IntervalDuration() != 200*time.Millisecond {
		t.Errorf("disco interval = %v", disco.IntervalDuration())
	}
	if len(disco.Palette()) != 6 {
		t.Errorf("disco palette = %v", disco.Palette())
	}

	sparkles, ok := cfg.Button("sparkles")
	if !ok {
		t.Fatal("no sparkles button")
	}
	if sparkles.Stateful() {
		t.Error("sparkles button should be momentary")
	}
	if sparkles.DurationValue() != time.Second || sparkles.SparkleCount() != 20 {
		t.Errorf("sparkles params = %v, %d", sparkles.DurationValue(), sparkles.SparkleCount())
	}

	light, _ := cfg.ButtonFor(EffectSpotlight)
	if light.BackgroundColor != "bg-yellow-50" {
		t.Errorf("spotlight background = %q", light.BackgroundColor)
	}
	if got := cfg.Message(string(EffectSpotlight)); got != "Move your mouse around to control the spotlight! ✨" {
		t.Errorf("spotlight message = %q", got)
	}
	if !cfg.Audio.Enabled {
		t.Error("default config should enable audio")
	}
}

func TestButtonDefaults(t *testing.T) {
	var b Button
	if b.IntervalDuration() != DefaultDiscoInterval {
		t.Errorf("interval default = %v", b.IntervalDuration())
	}
	if b.DurationValue() != DefaultSparkleDuration {
		t.Errorf("duration default = %v", b.DurationValue())
	}
	if b.SparkleCount() != DefaultSparkleCount {
		t.Errorf("count default = %d", b.SparkleCount())
	}
	if len(b.Palette()) != len(DefaultDiscoPalette) {
		t.Errorf("palette default = %v", b.Palette())
	}
}

func TestMessageFallback(t *testing.T) {
	cfg := &Config{Messages: map[string]string{"default": "hi"}}
	if got := cfg.Message("disco"); got != "hi" {
		t.Errorf("Message(disco) = %q, want default", got)
	}
}

const minimalYAML = `
title: Test
buttons:
  - id: lamp
    label: Lamp
    icon: Lightbulb
    effect: spotlight
    backgroundColor: bg-yellow-50
    states:
      off: {text: "Off", bgColor: bg-gray-700}
      on: {text: "On", bgColor: bg-yellow-400}
messages:
  default: hello
`

const minimalJSON = `{
  "title": "Test",
  "buttons": [
    {"id": "party", "label": "Disco", "icon": "Zap", "effect": "disco",
     "colors": ["#ff0000", "#00ff00"], "interval": 50,
     "states": {"off": {"text": "Disco Mode"}, "on": {"text": "Disco ON"}}}
  ],
  "messages": {"default": "hello", "disco": "dance"}
}`

const minimalTOML = `
title = "Test"

[[buttons]]
id = "burst"
label = "Magic Sparkles"
icon = "Sparkles"
effect = "sparkles"
bgColor = "bg-gradient-to-br from-pink-500 to-purple-600"
duration = 750
count = 5

[[buttons]]
id = "mode"
label = "Mode"
icon = "Moon"
effect = "darkMode"
backgroundColor = "bg-gray-900"

[buttons.states.off]
text = "Day Mode"
icon = "Sun"

[buttons.states.on]
text = "Night Mode"

[messages]
default = "hello"
darkMode = "night"
`

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		validate func(*testing.T, *Config)
	}{
		{
			name:    "yaml",
			file:    "config.yaml",
			content: minimalYAML,
			validate: func(t *testing.T, cfg *Config) {
				b, ok := cfg.ButtonFor(EffectSpotlight)
				if !ok || b.ID != "lamp" || !b.Stateful() {
					t.Errorf("unexpected spotlight button %+v", b)
				}
				if cfg.DefaultBackground != DefaultBackgroundTokens {
					t.Errorf("defaultBackground = %q", cfg.DefaultBackground)
				}
				if cfg.Tones.Light.Title != "text-white" {
					t.Errorf("light tone default = %+v", cfg.Tones.Light)
				}
			},
		},
		{
			name:    "json",
			file:    "config.json",
			content: minimalJSON,
			validate: func(t *testing.T, cfg *Config) {
				b, _ := cfg.ButtonFor(EffectDisco)
				if b.IntervalDuration() != 50*time.Millisecond {
					t.Errorf("interval = %v", b.IntervalDuration())
				}
				if cfg.Message("disco") != "dance" {
					t.Errorf("disco message = %q", cfg.Message("disco"))
				}
			},
		},
		{
			name:    "toml",
			file:    "config.toml",
			content: minimalTOML,
			validate: func(t *testing.T, cfg *Config) {
				b, _ := cfg.ButtonFor(EffectSparkles)
				if b.DurationValue() != 750*time.Millisecond || b.SparkleCount() != 5 {
					t.Errorf("sparkle params = %v, %d", b.DurationValue(), b.SparkleCount())
				}
				mode, _ := cfg.Button("mode")
				if mode.States == nil || mode.States.Off.Icon != "Sun" {
					t.Errorf("mode states = %+v", mode.States)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		errContains string
	}{
		{
			name:        "unknown effect",
			file:        "c.yaml",
			content:     strings.Replace(minimalYAML, "effect: spotlight", "effect: strobe", 1),
			errContains: `unknown effect "strobe"`,
		},
		{
			name:        "icon not in registry",
			file:        "c.yaml",
			content:     strings.Replace(minimalYAML, "icon: Lightbulb", "icon: Rocket", 1),
			errContains: `icon "Rocket" not in icon registry`,
		},
		{
			name:        "bad style token",
			file:        "c.yaml",
			content:     strings.Replace(minimalYAML, "bg-yellow-400", "bg-teal-400", 1),
			errContains: "states.on.bgColor",
		},
		{
			name:        "missing default message",
			file:        "c.yaml",
			content:     strings.Replace(minimalYAML, "default: hello", "spotlight: hello", 1),
			errContains: "messages.default is required",
		},
		{
			name:        "unknown message key",
			file:        "c.yaml",
			content:     minimalYAML + "  party: yes\n",
			errContains: "messages.party does not name an effect",
		},
		{
			name:        "message for momentary effect",
			file:        "c.yaml",
			content:     minimalYAML + "  sparkles: shiny\n",
			errContains: "messages.sparkles belongs to a momentary effect",
		},
		{
			name: "momentary effect with states",
			file: "c.yaml",
			content: strings.Replace(minimalYAML, "messages:", `  - id: burst
    label: Sparkles
    icon: Sparkles
    effect: sparkles
    states:
      on: {text: "Sparkling"}
messages:`, 1),
			errContains: `momentary effect "sparkles" cannot have states`,
		},
		{
			name:        "no buttons",
			file:        "c.yaml",
			content:     "title: Test\nbuttons: []\nmessages:\n  default: hello\n",
			errContains: "buttons needs at least 1 entry",
		},
		{
			name:        "short hex disco colour with alpha",
			file:        "c.json",
			content:     strings.Replace(minimalJSON, `"#00ff00"`, `"#0f0a"`, 1),
			errContains: `invalid disco colour "#0f0a"`,
		},
		{
			name: "duplicate id and effect",
			file: "c.yaml",
			content: strings.Replace(minimalYAML, "messages:", `  - id: lamp
    label: Again
    icon: Sun
    effect: spotlight
messages:`, 1),
			errContains: "duplicate id",
		},
		{
			name:        "unknown key",
			file:        "c.yaml",
			content:     minimalYAML + "colour: red\n",
			errContains: "failed to parse config",
		},
		{
			name:        "empty document",
			file:        "c.yaml",
			content:     "",
			errContains: "empty document",
		},
		{
			name:        "toml unknown key",
			file:        "c.toml",
			content:     minimalTOML + "\n[extra]\nx = 1\n",
			errContains: "unknown keys",
		},
		{
			name:        "bad disco colour",
			file:        "c.json",
			content:     strings.Replace(minimalJSON, `"#00ff00"`, `"green"`, 1),
			errContains: `invalid disco colour "green"`,
		},
		{
			name:        "negative interval",
			file:        "c.json",
			content:     strings.Replace(minimalJSON, `"interval": 50`, `"interval": -5`, 1),
			errContains: "interval must not be negative",
		},
		{
			name:        "states without effect",
			file:        "c.yaml",
			content:     strings.Replace(minimalYAML, "    effect: spotlight\n    backgroundColor: bg-yellow-50\n", "", 1),
			errContains: "states require an effect",
		},
		{
			name:        "spotlight without background",
			file:        "c.yaml",
			content:     strings.Replace(minimalYAML, "    backgroundColor: bg-yellow-50\n", "", 1),
			errContains: "backgroundColor is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestLoadMissingFileAndExtension(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := Load("config.ini"); err == nil || !strings.Contains(err.Error(), "unsupported config extension") {
		t.Errorf("bad extension error = %v", err)
	}
}

func TestEffectValid(t *testing.T) {
	for _, e := range Effects {
		if !e.Valid() {
			t.Errorf("%q should be valid", e)
		}
	}
	if Effect("strobe").Valid() || Effect("").Valid() {
		t.Error("unexpected valid effect")
	}
	if !EffectSparkles.Momentary() || EffectDisco.Momentary() {
		t.Error("Momentary classification wrong")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Buttons: []Button{
			{ID: "a", Icon: "Lightbulb", Effect: EffectSpotlight, States: &States{}},
			{ID: "b", Icon: "Nope", Effect: EffectDisco, Count: -1},
			{ID: "c", Icon: "Zap", Effect: EffectDisco, Colors: []string{"#ff0000", "#12"}},
		},
		Messages: map[string]string{"disco": "dance"},
	}
	cfg.applyDefaults()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{
		"messages.default is required",
		`buttons[0].backgroundColor is required for effect "spotlight"`,
		`buttons[1].icon: icon "Nope" not in icon registry`,
		"buttons[1].count must not be negative",
		`buttons[2].colors[1]: invalid disco colour "#12"`,
		`buttons[2].effect: effect "disco" already bound to button "b"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err.Error(), want)
		}
	}
}
