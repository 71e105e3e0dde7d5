// Package config provides YAML-based tuning configuration and the
// level-driven difficulty curve for the runner simulation.
package config

// RunnerConfig contains all tuning for the corridor simulation.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Collision  CollisionConfig  `yaml:"collision"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Magnet     MagnetConfig     `yaml:"magnet"`
	Letters    LetterConfig     `yaml:"letters"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines corridor geometry and tick pacing.
type WorldConfig struct {
	LaneWidth       float64 `yaml:"lane_width"`
	LaneCount       int     `yaml:"lane_count"`        // Must be odd; clamped at load
	BaseSpeed       float64 `yaml:"base_speed"`        // Forward units per second at level 1
	SpeedPerLevel   float64 `yaml:"speed_per_level"`   // Added per level above 1
	SpawnAhead      float64 `yaml:"spawn_ahead"`       // How far ahead the track extends
	FallbackHorizon float64 `yaml:"fallback_horizon"`  // Horizon used when the track is empty
	RemovalDistance float64 `yaml:"removal_distance"`  // Behind the player; unconditional purge
	SpacingFactor   float64 `yaml:"spacing_factor"`    // Speed contribution to spawn spacing
	MaxDelta        float64 `yaml:"max_delta"`         // Tick delta clamp in seconds
	MaxLevel        int     `yaml:"max_level"`
}

// PlayerConfig defines the player capsule and its host-side jump physics.
type PlayerConfig struct {
	Height      float64 `yaml:"height"`       // Body interval top, ground-relative
	JumpImpulse float64 `yaml:"jump_impulse"` // Initial vertical velocity
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per second
	LaneSnap    float64 `yaml:"lane_snap"`    // Lane-change lerp rate
}

// CollisionConfig defines overlap thresholds.
type CollisionConfig struct {
	ForwardZone   float64 `yaml:"forward_zone"`   // Swept window half-size on the forward axis
	Lateral       float64 `yaml:"lateral"`        // Default lane-axis overlap threshold
	LateralPickup float64 `yaml:"lateral_pickup"` // Wider forgiveness for magnet/shield pickups
	VerticalSlack float64 `yaml:"vertical_slack"` // Pickup vertical proximity
	PortalRange   float64 `yaml:"portal_range"`   // Shop portal forward-only trigger distance
}

// HazardConfig defines per-hazard tuning constants.
type HazardConfig struct {
	ObstacleHeight  float64 `yaml:"obstacle_height"`   // Cone height; ground band top
	LowBandHeight   float64 `yaml:"low_band_height"`   // Spike floors and turrets; cleared by a jump
	GateBandLow     float64 `yaml:"gate_band_low"`     // Laser gate band bottom, above standing height
	GateBandHigh    float64 `yaml:"gate_band_high"`    // Laser gate band top
	MissileSpeed    float64 `yaml:"missile_speed"`     // Extra forward speed beyond world scroll
	MuzzleOffset    float64 `yaml:"muzzle_offset"`     // Missile spawn offset from the firer
	TurretTriggerZ  float64 `yaml:"turret_trigger_z"`  // Fires once its Z crosses this
	AlienTriggerZ   float64 `yaml:"alien_trigger_z"`
	DroneLeadMargin float64 `yaml:"drone_lead_margin"` // Tracking stops once this close
	DroneTrackRate  float64 `yaml:"drone_track_rate"`  // Lane lerp rate multiplier
	BarrierSpeed    float64 `yaml:"barrier_speed"`     // Base oscillation speed
}

// MagnetConfig defines gem magnetism tuning.
type MagnetConfig struct {
	Radius   float64 `yaml:"radius"`    // Pull activates under this ground-plane distance
	PullRate float64 `yaml:"pull_rate"` // Lerp rate multiplier
	Duration float64 `yaml:"duration"`  // Power-up duration in seconds
}

// LetterConfig defines the letter-collection schedule.
type LetterConfig struct {
	Word          string  `yaml:"word"`            // Target word to spell
	BaseInterval  float64 `yaml:"base_interval"`   // Distance between letter spawns at level 1
	IntervalScale float64 `yaml:"interval_scale"`  // Added per level above 1
	FloatHeight   float64 `yaml:"float_height"`    // Letters and pickups bob at this height
}

// DifficultyConfig holds the knobs of the per-level difficulty curve.
// The curve itself is a pure function of level; see ForLevel.
type DifficultyConfig struct {
	ObstacleBase    float64 `yaml:"obstacle_base"`     // Obstacle-vs-ground-item probability at level 1
	ObstaclePerLvl  float64 `yaml:"obstacle_per_level"`
	ObstacleCap     float64 `yaml:"obstacle_cap"`
	SkipBase        float64 `yaml:"skip_base"`         // Chance to spawn nothing on a spawn tick
	SkipPerLvl      float64 `yaml:"skip_per_level"`    // Subtracted per level
	SkipFloor       float64 `yaml:"skip_floor"`
	GemBase         int     `yaml:"gem_base"`          // Gem value at level 1
	GemPerLvl       int     `yaml:"gem_per_level"`
	BonusGemFactor  int     `yaml:"bonus_gem_factor"`  // Bonus gem value = factor * level
	MinGapBase      float64 `yaml:"min_gap_base"`      // Spawn spacing at level 1
	MinGapPerLvl    float64 `yaml:"min_gap_per_level"` // Subtracted per level
	MinGapFloor     float64 `yaml:"min_gap_floor"`
	PowerUpBase     float64 `yaml:"powerup_base"`
	PowerUpPerLvl   float64 `yaml:"powerup_per_level"`
	PowerUpCap      float64 `yaml:"powerup_cap"`
	BonusItemChance float64 `yaml:"bonus_item_chance"` // Item riding above a standard obstacle
}
