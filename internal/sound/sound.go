// Package sound synthesises the short audio cues played when effects change.
package sound

import (
	"log/slog"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/light-tricks/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)
	ringSize   = 4096
	levelWidth = 1024
)

// Cue identifies a sound.
type Cue int

const (
	CueToggle Cue = iota
	CueSparkle
	CueDiscoTick
)

func (c Cue) String() string {
	switch c {
	case CueToggle:
		return "toggle"
	case CueSparkle:
		return "sparkle"
	case CueDiscoTick:
		return "disco-tick"
	}
	return "unknown"
}

// partial is one decaying sine component of a cue.
type partial struct {
	freq, amp float64
}

type voice struct {
	partials []partial
	length   time.Duration
	decay    float64 // e-folding time in seconds
}

var voices = map[Cue]voice{
	CueToggle:    {partials: []partial{{660, 0.5}}, length: 60 * time.Millisecond, decay: 0.02},
	CueSparkle:   {partials: []partial{{1318.5, 0.35}, {1975.5, 0.25}, {2637, 0.1}}, length: 600 * time.Millisecond, decay: 0.18},
	CueDiscoTick: {partials: []partial{{110, 0.45}, {220, 0.2}}, length: 90 * time.Millisecond, decay: 0.03},
}

// Tone returns a streamer for the cue at the given sample rate.
func Tone(sr beep.SampleRate, c Cue) beep.Streamer {
	v, ok := voices[c]
	if !ok {
		return beep.Silence(0)
	}
	total := sr.N(v.length)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-t / v.decay)
			var s float64
			for _, p := range v.partials {
				s += p.amp * math.Sin(2*math.Pi*p.freq*t)
			}
			s *= env
			samples[i] = [2]float64{s, s}
			pos++
		}
		return len(samples), true
	})
}

// Player mixes cues into the speaker. A disabled Player accepts every call
// and does nothing.
type Player struct {
	enabled bool
	mixer   *beep.Mixer
	tap     *levelTap
	log     *slog.Logger
}

// NewPlayer initialises the speaker when audio is enabled. A speaker that
// cannot be opened disables audio instead of failing.
func NewPlayer(cfg config.Audio, logger *slog.Logger) *Player {
	p := &Player{log: logger}
	if !cfg.Enabled {
		logger.Debug("audio disabled by config")
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		logger.Warn("audio unavailable, continuing muted", "err", err)
		return p
	}

	p.mixer = &beep.Mixer{}
	p.tap = newLevelTap(&effects.Volume{Streamer: p.mixer, Base: 2, Volume: cfg.Volume}, ringSize)
	speaker.Play(p.tap)
	p.enabled = true
	logger.Debug("audio ready", "sampleRate", int(sampleRate), "volume", cfg.Volume)
	return p
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool { return p != nil && p.enabled }

// Play queues a cue.
func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	speaker.Lock()
	p.mixer.Add(Tone(sampleRate, c))
	speaker.Unlock()
}

// Level is the recent output loudness in [0, 1].
func (p *Player) Level() float64 {
	if !p.Enabled() {
		return 0
	}
	return p.tap.level(levelWidth)
}

// Close stops playback.
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.enabled = false
}
