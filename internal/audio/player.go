// Package audio plays short synthesized cues for gameplay events.
//
// Audio is optional: when the speaker cannot be opened the Player stays
// silent and the game runs unchanged.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/memerun/internal/games/memerun"
)

const sampleRate = beep.SampleRate(44100)

// Player is a memerun.EventSink that mixes one cue per event.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer returns a silent player. Call Init to open the speaker.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: clamp(volume, 0, 1),
	}
}

// Init opens the speaker. A second call is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything queued.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Notify queues the cue for e. Events without a cue are ignored.
func (p *Player) Notify(e memerun.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, ok := Cue(e.Kind, p.volume)
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

var _ memerun.EventSink = (*Player)(nil)

// Cue returns a finite streamer for an event kind.
func Cue(kind memerun.EventKind, volume float64) (beep.Streamer, bool) {
	switch kind {
	case memerun.EventSessionStart:
		return sweep(330, 660, 180*time.Millisecond, volume), true
	case memerun.EventCollect:
		return blip(880, 90*time.Millisecond, volume), true
	case memerun.EventHit:
		return buzz(120, 150*time.Millisecond, volume), true
	case memerun.EventLifeLost:
		return blip(220, 120*time.Millisecond, volume), true
	case memerun.EventGameOver:
		return sweep(440, 110, 600*time.Millisecond, volume), true
	}
	return nil, false
}

// blip is a sine tone with an exponential decay.
func blip(freq float64, d time.Duration, volume float64) beep.Streamer {
	return tone(d, func(t, _ float64) float64 {
		return 0.4 * volume * math.Exp(-t*20) * math.Sin(2*math.Pi*freq*t)
	})
}

// buzz is a harmonic-rich low tone with a short fade in.
func buzz(freq float64, d time.Duration, volume float64) beep.Streamer {
	return tone(d, func(t, _ float64) float64 {
		s := 0.3*math.Sin(2*math.Pi*freq*t) +
			0.15*math.Sin(2*math.Pi*freq*2*t) +
			0.075*math.Sin(2*math.Pi*freq*3*t)
		env := math.Min(t/0.01, 1)
		return s * env * volume
	})
}

// sweep glides linearly from one frequency to another.
func sweep(from, to float64, d time.Duration, volume float64) beep.Streamer {
	total := d.Seconds()
	return tone(d, func(t, progress float64) float64 {
		// Phase is the integral of the instantaneous frequency.
		phase := 2 * math.Pi * (from*t + (to-from)*t*t/(2*total))
		return 0.3 * volume * (1 - progress) * math.Sin(phase)
	})
}

// tone builds a mono streamer of length d from a sample function of time
// in seconds and progress in [0, 1).
func tone(d time.Duration, fn func(t, progress float64) float64) beep.Streamer {
	n := sampleRate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			t := float64(pos) / float64(sampleRate)
			v := clamp(fn(t, float64(pos)/float64(n)), -1, 1)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return i, true
	})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
