// Package sound plays short tones for table events.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone frequencies in Hz
const (
	DrawTone  = 660
	EmptyTone = 220
)

// Player plays tones through the speaker. The zero value is silent.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. On failure the returned player is
// silent and the error says why.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Enabled reports whether tones will be heard
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Play plays a sine tone of freq Hz for d
func (p *Player) Play(freq float64, d time.Duration) {
	if !p.Enabled() {
		return
	}
	s, err := Tone(freq, d)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Tone returns a sine streamer of freq Hz lasting d
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), sine), nil
}
