package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/ugaemi/chatbase-hero/internal/game"
)

// SoundType identifies a sound effect.
type SoundType int

const (
	SoundNone SoundType = iota
	SoundHit
	SoundBlocked
	SoundBugDeath
	SoundLevelUp
	SoundPowerUp
	SoundHelped
	SoundDoc
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundBlocked:
		return "blocked"
	case SoundBugDeath:
		return "bug_death"
	case SoundLevelUp:
		return "level_up"
	case SoundPowerUp:
		return "power_up"
	case SoundHelped:
		return "helped"
	case SoundDoc:
		return "doc"
	case SoundGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// SoundFor maps a tick event to its sound effect. Events without a sound
// return SoundNone.
func SoundFor(e game.Event) SoundType {
	switch e.Kind {
	case game.EventCollision:
		if e.Shielded {
			return SoundBlocked
		}
		return SoundHit
	case game.EventBugDeath:
		return SoundBugDeath
	case game.EventLevelUp:
		return SoundLevelUp
	case game.EventPowerUp:
		return SoundPowerUp
	case game.EventCustomerHelped:
		return SoundHelped
	case game.EventDocCollected:
		return SoundDoc
	case game.EventGameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}

// Effect returns a finite streamer for sound at rate, or nil for SoundNone.
func Effect(sound SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case SoundHit:
		s = sequence(rate, note{110, 150 * time.Millisecond, WaveSaw})
	case SoundBlocked:
		s = sequence(rate, note{660, 80 * time.Millisecond, WaveSquare})
	case SoundBugDeath:
		s = sequence(rate, note{0, 90 * time.Millisecond, WaveNoise})
	case SoundLevelUp:
		s = sequence(rate,
			note{523.25, 90 * time.Millisecond, WaveSquare},
			note{659.25, 90 * time.Millisecond, WaveSquare},
			note{783.99, 180 * time.Millisecond, WaveSquare},
		)
	case SoundPowerUp:
		s = sequence(rate,
			note{440, 70 * time.Millisecond, WaveSine},
			note{880, 120 * time.Millisecond, WaveSine},
		)
	case SoundHelped:
		s = sequence(rate,
			note{987.77, 80 * time.Millisecond, WaveSquare},
			note{1318.51, 160 * time.Millisecond, WaveSquare},
		)
	case SoundDoc:
		s = sequence(rate, note{1760, 60 * time.Millisecond, WaveSine})
	case SoundGameOver:
		s = sequence(rate,
			note{392, 200 * time.Millisecond, WaveSaw},
			note{311.13, 200 * time.Millisecond, WaveSaw},
			note{261.63, 400 * time.Millisecond, WaveSaw},
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
