package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/ugaemi/chatbase-hero/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Effects beyond this many per tick are dropped.
	maxEffectsPerTick = 3

	defaultVolume = 0.3
)

// SoundManager plays event sound effects through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager. Nothing plays until Initialize.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	slog.Info("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Cleanup silences all playing effects.
func (sm *SoundManager) Cleanup() {
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

// Notify plays the sounds for the events of one tick, deduplicated by type.
func (sm *SoundManager) Notify(events []game.Event) {
	sounds := Sounds(events)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || len(sounds) == 0 {
		return
	}

	speaker.Lock()
	for _, s := range sounds {
		sm.mixer.Add(Effect(s, sampleRate, sm.volume))
	}
	speaker.Unlock()
}

// Sounds returns the distinct sounds for events in order of first occurrence,
// capped at maxEffectsPerTick. Game over always plays.
func Sounds(events []game.Event) []SoundType {
	var out []SoundType
	seen := make(map[SoundType]bool)
	for _, e := range events {
		s := SoundFor(e)
		if s == SoundNone || seen[s] {
			continue
		}
		seen[s] = true
		if s == SoundGameOver {
			return []SoundType{SoundGameOver}
		}
		if len(out) < maxEffectsPerTick {
			out = append(out, s)
		}
	}
	return out
}
