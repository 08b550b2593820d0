package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Light & Tricks"

	// Button grid
	GridColumns   = 2
	GridMaxWidth  = 672
	GridGap       = 24
	ButtonHeight  = 152
	ButtonPadding = 32
	IconSize      = 48
	HoverScale    = 1.05

	// Vertical rhythm
	TitleSize      = 48
	TitleMargin    = 48
	MessageSize    = 18
	MessageMargin  = 48
	FooterSize     = 14
	FooterMargin   = 32
	ButtonTextSize = 20

	// Spotlight glow (w-96 h-96 opacity-30 blur-3xl)
	GlowDiameter = 384
	GlowOpacity  = 0.3
	GlowBlur     = 64

	// Sparkle burst
	SparkleIconSize = 24
	SparkleMaxDelay = 500 * time.Millisecond
	SparklePeriod   = time.Second

	DefaultDiscoInterval    = 200 * time.Millisecond
	DefaultSparkleDuration  = 1000 * time.Millisecond
	DefaultSparkleCount     = 20
	DefaultDiscoColor       = "#ff0000"
	DefaultBackgroundTokens = "bg-gray-800"
)

// DefaultDiscoPalette is used when a disco button lists no colours.
var DefaultDiscoPalette = []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff"}

// Effect names a cosmetic mode. The set is closed; see Valid.
type Effect string

const (
	EffectSpotlight Effect = "spotlight"
	EffectDisco     Effect = "disco"
	EffectDarkMode  Effect = "darkMode"
	EffectSparkles  Effect = "sparkles"
)

// Effects lists every recognised effect.
var Effects = []Effect{EffectSpotlight, EffectDisco, EffectDarkMode, EffectSparkles}

// Valid reports whether e is a recognised effect name.
func (e Effect) Valid() bool {
	switch e {
	case EffectSpotlight, EffectDisco, EffectDarkMode, EffectSparkles:
		return true
	}
	return false
}

// Momentary reports whether e is a self-reverting action rather than a toggle.
func (e Effect) Momentary() bool {
	return e == EffectSparkles
}

// Config is the whole declarative document.
type Config struct {
	Title             string            `yaml:"title" toml:"title"`
	Buttons           []Button          `yaml:"buttons" toml:"buttons" validate:"min=1,unique=ID,dive"`
	Messages          map[string]string `yaml:"messages" toml:"messages" validate:"dive,keys,messagekey,endkeys"`
	Footer            string            `yaml:"footer" toml:"footer"`
	DefaultBackground string            `yaml:"defaultBackground" toml:"defaultBackground" validate:"style"`
	Tones             Tones             `yaml:"tones" toml:"tones"`
	Audio             Audio             `yaml:"audio" toml:"audio"`
}

// ButtonState is the look of a state-bearing button in one of its states.
type ButtonState struct {
	Text      string `yaml:"text" toml:"text"`
	Icon      string `yaml:"icon" toml:"icon" validate:"omitempty,icon"`
	BgColor   string `yaml:"bgColor" toml:"bgColor" validate:"style"`
	TextColor string `yaml:"textColor" toml:"textColor" validate:"style"`
	Shadow    string `yaml:"shadow" toml:"shadow" validate:"style"`
}

// States holds both looks of a toggle button.
type States struct {
	Off ButtonState `yaml:"off" toml:"off"`
	On  ButtonState `yaml:"on" toml:"on"`
}

// Button is one entry of the grid.
type Button struct {
	ID     string  `yaml:"id" toml:"id" validate:"required"`
	Label  string  `yaml:"label" toml:"label"`
	Icon   string  `yaml:"icon" toml:"icon" validate:"required,icon"`
	States *States `yaml:"states" toml:"states"`
	Effect Effect  `yaml:"effect" toml:"effect" validate:"omitempty,oneof=spotlight disco darkMode sparkles"`

	// Used directly when States is nil, and as per-field fallback otherwise.
	BgColor   string `yaml:"bgColor" toml:"bgColor" validate:"style"`
	TextColor string `yaml:"textColor" toml:"textColor" validate:"style"`
	Shadow    string `yaml:"shadow" toml:"shadow" validate:"style"`

	// Full-screen background while this effect is active.
	BackgroundColor string `yaml:"backgroundColor" toml:"backgroundColor" validate:"style"`

	// disco
	Colors   []string `yaml:"colors" toml:"colors" validate:"dive,hexcolor,hexrgb"`
	Interval int      `yaml:"interval" toml:"interval" validate:"gte=0"` // ms

	// sparkles
	Duration int `yaml:"duration" toml:"duration" validate:"gte=0"` // ms
	Count    int `yaml:"count" toml:"count" validate:"gte=0"`
}

// Stateful reports whether the button's look depends on its effect flag.
func (b *Button) Stateful() bool {
	return b.States != nil
}

// IntervalDuration is the disco tick period.
func (b *Button) IntervalDuration() time.Duration {
	if b.Interval <= 0 {
		return DefaultDiscoInterval
	}
	return time.Duration(b.Interval) * time.Millisecond
}

// DurationValue is how long a sparkle burst stays visible.
func (b *Button) DurationValue() time.Duration {
	if b.Duration <= 0 {
		return DefaultSparkleDuration
	}
	return time.Duration(b.Duration) * time.Millisecond
}

// SparkleCount is the number of sparkles in one burst.
func (b *Button) SparkleCount() int {
	if b.Count <= 0 {
		return DefaultSparkleCount
	}
	return b.Count
}

// Palette returns the disco colours, falling back to DefaultDiscoPalette.
func (b *Button) Palette() []string {
	if len(b.Colors) == 0 {
		return DefaultDiscoPalette
	}
	return b.Colors
}

// Tone holds the text colour tokens for one contrast mode.
type Tone struct {
	Title   string `yaml:"title" toml:"title" validate:"style"`
	Message string `yaml:"message" toml:"message" validate:"style"`
	Footer  string `yaml:"footer" toml:"footer" validate:"style"`
}

// Tones pairs the light-on-dark and dark-on-light text styling.
type Tones struct {
	Light Tone `yaml:"light" toml:"light"`
	Dark  Tone `yaml:"dark" toml:"dark"`
}

// Audio controls the synthesised sound cues. Volume is a log2 gain: 0 plays
// at unit level, -1 at half.
type Audio struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"`
}

// Button returns the button with the given id.
func (c *Config) Button(id string) (*Button, bool) {
	for i := range c.Buttons {
		if c.Buttons[i].ID == id {
			return &c.Buttons[i], true
		}
	}
	return nil, false
}

// ButtonFor returns the button bound to an effect.
func (c *Config) ButtonFor(e Effect) (*Button, bool) {
	for i := range c.Buttons {
		if c.Buttons[i].Effect == e {
			return &c.Buttons[i], true
		}
	}
	return nil, false
}

// Message returns the message for key, or the default message.
func (c *Config) Message(key string) string {
	if m, ok := c.Messages[key]; ok {
		return m
	}
	return c.Messages[MessageDefault]
}

// MessageDefault is the messages key used when no effect is active.
const MessageDefault = "default"

// applyDefaults fills optional fields that have a documented default.
func (c *Config) applyDefaults() {
	if c.DefaultBackground == "" {
		c.DefaultBackground = DefaultBackgroundTokens
	}
	if c.Tones.Light == (Tone{}) {
		c.Tones.Light = Tone{Title: "text-white", Message: "text-gray-300", Footer: "text-gray-400"}
	}
	if c.Tones.Dark == (Tone{}) {
		c.Tones.Dark = Tone{Title: "text-gray-800", Message: "text-gray-600", Footer: "text-gray-500"}
	}
}
