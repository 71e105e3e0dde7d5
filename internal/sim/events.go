package sim

import "github.com/vovakirdan/skyrush/internal/core"

// Event is a discrete outcome produced during a tick, delivered to the host
// in entity iteration order via TickResult. Emission is fire-and-forget: a
// dropped effect or cue is cosmetic, never correctness-affecting.
type Event interface {
	simEvent()
}

// PlayerDamagedEvent signals a damage-source hit that was not absorbed.
type PlayerDamagedEvent struct {
	Source Kind
}

func (PlayerDamagedEvent) simEvent() {}

// GemCollectedEvent carries the point value of a collected gem.
type GemCollectedEvent struct {
	Value int
}

func (GemCollectedEvent) simEvent() {}

// LetterCollectedEvent marks a target-word letter index as collected.
type LetterCollectedEvent struct {
	Index int
	Glyph rune
}

func (LetterCollectedEvent) simEvent() {}

// MagnetActivatedEvent signals that the magnet power-up timer should start.
type MagnetActivatedEvent struct{}

func (MagnetActivatedEvent) simEvent() {}

// ShieldActivatedEvent signals that the shield power-up timer should start.
type ShieldActivatedEvent struct{}

func (ShieldActivatedEvent) simEvent() {}

// ShopEnteredEvent signals that the player crossed a shop portal.
type ShopEnteredEvent struct{}

func (ShopEnteredEvent) simEvent() {}

// JumpPadTriggeredEvent signals a jump pad launch.
type JumpPadTriggeredEvent struct{}

func (JumpPadTriggeredEvent) simEvent() {}

// SpeedBoostCollectedEvent signals a collected speed boost.
type SpeedBoostCollectedEvent struct{}

func (SpeedBoostCollectedEvent) simEvent() {}

// LevelCompletedEvent signals that the letter objective for the given level
// finished and the simulation performed its level transition.
type LevelCompletedEvent struct {
	Level int
}

func (LevelCompletedEvent) simEvent() {}

// RunWonEvent signals the full objective was completed at the final level.
type RunWonEvent struct{}

func (RunWonEvent) simEvent() {}

// DistanceFinalEvent reports the total distance when a run ends.
type DistanceFinalEvent struct {
	Distance float64
}

func (DistanceFinalEvent) simEvent() {}

// EffectEvent requests a visual effect at a world position.
type EffectEvent struct {
	Pos   core.Vec3
	Color core.Color
}

func (EffectEvent) simEvent() {}

// AudioCue identifies a fire-and-forget sound effect.
type AudioCue int

const (
	CueExplosion AudioCue = iota
	CuePickup
	CueLetter
	CuePowerUp
	CueFire
	CueShop
	CueJump
	CueBoost
)

// String returns the name of the audio cue.
func (c AudioCue) String() string {
	switch c {
	case CueExplosion:
		return "explosion"
	case CuePickup:
		return "pickup"
	case CueLetter:
		return "letter"
	case CuePowerUp:
		return "powerup"
	case CueFire:
		return "fire"
	case CueShop:
		return "shop"
	case CueJump:
		return "jump"
	case CueBoost:
		return "boost"
	default:
		return "unknown"
	}
}

// AudioCueEvent requests playback of a sound effect.
type AudioCueEvent struct {
	Cue AudioCue
}

func (AudioCueEvent) simEvent() {}
