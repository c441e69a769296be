// Package audio plays short synthesized cues for snake events.
// Audio is optional: every method is safe to call when the speaker could not
// be initialized, and then does nothing.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a cue.
type note struct {
	freq     float64
	duration time.Duration
}

var (
	eatNotes      = []note{{660, 60 * time.Millisecond}, {990, 80 * time.Millisecond}}
	gameOverNotes = []note{{392, 120 * time.Millisecond}, {311, 120 * time.Millisecond}, {196, 260 * time.Millisecond}}
)

// SoundManager owns the speaker and a mixer that cues are added to.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager. volume is linear in (0, 1];
// zero mutes every cue.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences all cues. The speaker itself stays open for the process.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEat plays a short rising chime.
func (sm *SoundManager) PlayEat() {
	sm.play(eatNotes)
}

// PlayGameOver plays a falling three-note buzz.
func (sm *SoundManager) PlayGameOver() {
	sm.play(gameOverNotes)
}

func (sm *SoundManager) play(notes []note) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := buildCue(sampleRate, notes, sm.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// buildCue renders notes back to back at the given linear volume.
func buildCue(sr beep.SampleRate, notes []note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.duration), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales a streamer by a linear factor; 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
