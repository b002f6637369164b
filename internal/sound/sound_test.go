package sound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTone_Length(t *testing.T) {
	s, err := Tone(DrawTone, 50*time.Millisecond)
	require.NoError(t, err)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(50*time.Millisecond), total)
}

func TestTone_InvalidFrequency(t *testing.T) {
	// Above the Nyquist limit
	_, err := Tone(float64(sampleRate), time.Millisecond)
	assert.Error(t, err)
}

func TestZeroPlayerIsSilent(t *testing.T) {
	var p *Player
	assert.False(t, p.Enabled())
	p.Play(DrawTone, time.Millisecond)

	assert.False(t, (&Player{}).Enabled())
}
