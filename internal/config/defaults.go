package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded fallback configuration.
// Used only if the embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			LaneWidth:       4.0,
			LaneCount:       5,
			BaseSpeed:       24.0,
			SpeedPerLevel:   3.0,
			SpawnAhead:      160.0,
			FallbackHorizon: -60.0,
			RemovalDistance: 15.0,
			SpacingFactor:   0.55,
			MaxDelta:        0.1,
			MaxLevel:        7,
		},
		Player: PlayerConfig{
			Height:      3.2,
			JumpImpulse: 9.0,
			Gravity:     24.0,
			LaneSnap:    12.0,
		},
		Collision: CollisionConfig{
			ForwardZone:   2.0,
			Lateral:       1.8,
			LateralPickup: 2.6,
			VerticalSlack: 2.5,
			PortalRange:   3.0,
		},
		Hazards: HazardConfig{
			ObstacleHeight:  2.6,
			LowBandHeight:   1.2,
			GateBandLow:     3.6,
			GateBandHigh:    6.0,
			MissileSpeed:    26.0,
			MuzzleOffset:    2.5,
			TurretTriggerZ:  -80.0,
			AlienTriggerZ:   -90.0,
			DroneLeadMargin: 5.0,
			DroneTrackRate:  1.5,
			BarrierSpeed:    5.0,
		},
		Magnet: MagnetConfig{
			Radius:   40.0,
			PullRate: 10.0,
			Duration: 8.0,
		},
		Letters: LetterConfig{
			Word:          "SKYRUSH",
			BaseInterval:  220.0,
			IntervalScale: 40.0,
			FloatHeight:   1.4,
		},
		Difficulty: DifficultyConfig{
			ObstacleBase:    0.55,
			ObstaclePerLvl:  0.04,
			ObstacleCap:     0.8,
			SkipBase:        0.18,
			SkipPerLvl:      0.01,
			SkipFloor:       0.08,
			GemBase:         10,
			GemPerLvl:       5,
			BonusGemFactor:  25,
			MinGapBase:      26.0,
			MinGapPerLvl:    1.5,
			MinGapFloor:     14.0,
			PowerUpBase:     0.06,
			PowerUpPerLvl:   0.01,
			PowerUpCap:      0.15,
			BonusItemChance: 0.2,
		},
	}
}
