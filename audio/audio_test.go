package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TimerBoard/timer"
)

func TestRenderToneLength(t *testing.T) {
	b, err := renderTone(440, 100*time.Millisecond, 3)
	require.NoError(t, err)
	assert.Equal(t, 5*SampleRate.N(100*time.Millisecond), b.Len())
}

func TestRenderToneRejectsBadInput(t *testing.T) {
	_, err := renderTone(440, 0, 1)
	assert.Error(t, err)
	_, err = renderTone(float64(SampleRate), time.Millisecond, 1)
	assert.Error(t, err)
}

func TestNotifyPlaysOnlyWhenEnabled(t *testing.T) {
	p, err := NewPlayer(Tones{HalfwayHz: 660, CompletedHz: 880, Length: 10 * time.Millisecond})
	require.NoError(t, err)

	var played []int
	p.play = func(s beep.Streamer) {
		n := 0
		buf := make([][2]float64, 512)
		for {
			k, ok := s.Stream(buf)
			n += k
			if !ok {
				break
			}
		}
		played = append(played, n)
	}

	p.Notify(timer.Event{Kind: timer.EventCompleted})
	assert.Empty(t, played)

	p.enabled = true
	p.Notify(timer.Event{Kind: timer.EventHalfway})
	p.Notify(timer.Event{Kind: timer.EventCompleted})
	p.Notify(timer.Event{Kind: "other"})
	one := SampleRate.N(10 * time.Millisecond)
	assert.Equal(t, []int{one, 5 * one}, played)
}
