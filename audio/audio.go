// Package audio plays generated alert tones for timer events.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"TimerBoard/timer"
)

// SampleRate is the rate tones are rendered and played at.
const SampleRate = beep.SampleRate(44100)

// Tones describes the alert sounds.
type Tones struct {
	HalfwayHz   float64
	CompletedHz float64
	Length      time.Duration
}

// Player renders one buffer per event kind and plays it on Notify.
type Player struct {
	mu      sync.Mutex
	buffers map[timer.EventKind]*beep.Buffer
	enabled bool
	play    func(beep.Streamer)
}

// NewPlayer renders the tone buffers. The player stays silent until Init
// succeeds.
func NewPlayer(t Tones) (*Player, error) {
	halfway, err := renderTone(t.HalfwayHz, t.Length, 1)
	if err != nil {
		return nil, fmt.Errorf("render halfway tone: %w", err)
	}
	completed, err := renderTone(t.CompletedHz, t.Length, 3)
	if err != nil {
		return nil, fmt.Errorf("render completed tone: %w", err)
	}
	return &Player{
		buffers: map[timer.EventKind]*beep.Buffer{
			timer.EventHalfway:   halfway,
			timer.EventCompleted: completed,
		},
		play: func(s beep.Streamer) { speaker.Play(s) },
	}, nil
}

// Init opens the audio device.
func (p *Player) Init() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		slog.Warn("Audio disabled: failed to initialize speaker", "error", err)
		return err
	}
	p.mu.Lock()
	p.enabled = true
	p.mu.Unlock()
	return nil
}

// Notify plays the tone for ev.Kind.
func (p *Player) Notify(ev timer.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	b, ok := p.buffers[ev.Kind]
	if !ok {
		slog.Debug("No tone for event", "kind", ev.Kind)
		return
	}
	p.play(b.Streamer(0, b.Len()))
}

// renderTone builds beeps repetitions of a sine tone separated by gaps of
// the same length.
func renderTone(freq float64, length time.Duration, beeps int) (*beep.Buffer, error) {
	if length <= 0 {
		return nil, fmt.Errorf("tone length must be positive, got %s", length)
	}
	n := SampleRate.N(length)
	var parts []beep.Streamer
	for i := 0; i < beeps; i++ {
		sine, err := generators.SineTone(SampleRate, freq)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			parts = append(parts, beep.Silence(n))
		}
		parts = append(parts, beep.Take(n, sine))
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(beep.Seq(parts...))
	return buffer, nil
}
