package config

import "github.com/vovakirdan/skyrush/internal/core"

// Level floors below which a hazard type never spawns.
const (
	UnlockAlien   = 2
	UnlockSpikes  = 2
	UnlockBarrier = 3
	UnlockDrone   = 3
	UnlockLaser   = 4
	UnlockTurret  = 5
)

// Difficulty is the derived spawn table for a single level. It is a pure
// function of the level integer; recompute it on every level transition
// rather than caching across them.
type Difficulty struct {
	Level int

	// Spawn decision probabilities
	ObstacleProb float64 // Obstacle branch vs ground-item branch
	SkipProb     float64 // Spawn nothing this tick
	DoubleProb   float64 // Two simultaneous obstacles
	TripleProb   float64 // Three simultaneous obstacles

	// Hazard branch probabilities, rolled in priority order
	LaserProb   float64
	BarrierProb float64
	SpikeProb   float64
	TurretProb  float64
	DroneProb   float64
	AlienProb   float64

	// Ground-item branch probabilities
	JumpPadProb    float64
	SpeedBoostProb float64
	PowerUpProb    float64

	// Value and spacing scaling
	GemValue        int
	BonusGemValue   int
	MinGap          float64
	BarrierSpeed    float64
	BonusItemChance float64
}

// ForLevel computes the difficulty table for the given level.
// Deterministic: two calls with the same level yield identical values.
func (c DifficultyConfig) ForLevel(hz HazardConfig, level int) Difficulty {
	if level < 1 {
		level = 1
	}
	l := float64(level - 1)

	d := Difficulty{
		Level:        level,
		ObstacleProb: core.ClampF(c.ObstacleBase+c.ObstaclePerLvl*l, 0, c.ObstacleCap),
		SkipProb:     core.ClampF(c.SkipBase-c.SkipPerLvl*l, c.SkipFloor, 1),
		DoubleProb:   core.ClampF(0.12+0.05*l, 0, 0.5),
		TripleProb:   core.ClampF(0.04*(l-1), 0, 0.3),

		JumpPadProb:    0.12,
		SpeedBoostProb: 0.1,
		PowerUpProb:    core.ClampF(c.PowerUpBase+c.PowerUpPerLvl*l, 0, c.PowerUpCap),

		GemValue:        c.GemBase + c.GemPerLvl*(level-1),
		BonusGemValue:   c.BonusGemFactor * level,
		MinGap:          core.ClampF(c.MinGapBase-c.MinGapPerLvl*l, c.MinGapFloor, c.MinGapBase),
		BarrierSpeed:    hz.BarrierSpeed * (1 + 0.15*l),
		BonusItemChance: c.BonusItemChance,
	}

	if level >= UnlockLaser {
		d.LaserProb = core.ClampF(0.08+0.02*l, 0, 0.22)
	}
	if level >= UnlockBarrier {
		d.BarrierProb = core.ClampF(0.1+0.02*l, 0, 0.25)
	}
	if level >= UnlockSpikes {
		d.SpikeProb = core.ClampF(0.08+0.02*l, 0, 0.2)
	}
	if level >= UnlockTurret {
		d.TurretProb = core.ClampF(0.06+0.015*l, 0, 0.18)
	}
	if level >= UnlockDrone {
		d.DroneProb = core.ClampF(0.08+0.02*l, 0, 0.25)
	}
	if level >= UnlockAlien {
		d.AlienProb = core.ClampF(0.1+0.03*l, 0, 0.3)
	}

	return d
}

// WorldSpeed returns the scroll speed for the given level.
func (w WorldConfig) WorldSpeed(level int) float64 {
	if level < 1 {
		level = 1
	}
	return w.BaseSpeed + w.SpeedPerLevel*float64(level-1)
}

// LetterInterval returns the distance between letter spawns at the given level.
func (l LetterConfig) LetterInterval(level int) float64 {
	if level < 1 {
		level = 1
	}
	return l.BaseInterval + l.IntervalScale*float64(level-1)
}
