package sim

import (
	"github.com/vovakirdan/skyrush/internal/config"
	"github.com/vovakirdan/skyrush/internal/core"
)

// planSpawn runs once per tick after movement and collision settle. It
// extends the track from the spawn horizon when there is room, following
// the difficulty table and the letter-collection schedule.
func (d *Driver) planSpawn(f Frame) {
	if f.LaneCount < 1 {
		f.LaneCount = 1
	}
	diff := d.cfg.Difficulty.ForLevel(d.cfg.Hazards, f.Level)

	horizon, ok := d.trackHorizon()
	if !ok {
		horizon = d.cfg.World.FallbackHorizon
	}
	// Only extend while the horizon is closer than the spawn-ahead limit.
	if horizon <= -d.cfg.World.SpawnAhead {
		return
	}

	// Spacing tightens as speed increases so perceived density stays
	// constant, and loosens at low levels via the difficulty min gap.
	z := horizon - (diff.MinGap + f.WorldSpeed*d.cfg.World.SpacingFactor)
	if z < -d.cfg.World.SpawnAhead {
		z = -d.cfg.World.SpawnAhead
	}

	// Letter schedule takes priority over everything else.
	if d.distance >= d.nextLetterAt {
		d.nextLetterAt = d.distance + d.cfg.Letters.LetterInterval(f.Level)
		d.spawnLetterOrGem(f, diff, z)
		return
	}

	// Occasional empty tick keeps the track from feeling monotonous.
	if d.rng.Float64() < diff.SkipProb {
		return
	}

	if d.rng.Float64() < diff.ObstacleProb {
		d.spawnHazard(f, diff, z)
	} else {
		d.spawnGroundItem(f, diff, z)
	}
}

// trackHorizon returns the minimum forward coordinate among track-defining
// entities, or false when none exist.
func (d *Driver) trackHorizon() (float64, bool) {
	found := false
	min := 0.0
	for i := 0; i < d.reg.Len(); i++ {
		e := d.reg.At(i)
		if !e.Active || !e.Kind.TrackDefining() {
			continue
		}
		if !found || e.Pos.Z < min {
			min = e.Pos.Z
			found = true
		}
	}
	return min, found
}

// laneX converts a lane index (0..laneCount-1) to a lane-axis coordinate
// centered on the middle lane.
func (d *Driver) laneX(lane, laneCount int) float64 {
	return float64(lane-laneCount/2) * d.cfg.World.LaneWidth
}

// spawnLetterOrGem spawns one letter for a uniformly chosen unclaimed index,
// or a value-scaled gem once the spelling objective is exhausted.
func (d *Driver) spawnLetterOrGem(f Frame, diff config.Difficulty, z float64) {
	lane := d.rng.Intn(f.LaneCount)
	pos := core.Vec3{X: d.laneX(lane, f.LaneCount), Y: d.cfg.Letters.FloatHeight, Z: z}

	unclaimed := make([]int, 0, len(d.collected))
	for i, got := range d.collected {
		if !got {
			unclaimed = append(unclaimed, i)
		}
	}
	if len(unclaimed) == 0 {
		d.reg.Spawn(Entity{Kind: KindGem, Pos: pos, Value: diff.BonusGemValue, Color: core.ColorCyan})
		return
	}

	idx := unclaimed[d.rng.Intn(len(unclaimed))]
	d.reg.Spawn(Entity{Kind: KindLetter, Pos: pos, LetterIndex: idx, Color: core.ColorYellow})
}

// spawnHazard rolls through the hazard types in fixed priority order. Each
// roll is gated by its level-unlock floor inside the difficulty table (a
// locked hazard carries zero probability), falling through to the plain
// obstacle line at the end.
func (d *Driver) spawnHazard(f Frame, diff config.Difficulty, z float64) {
	switch {
	case d.rng.Float64() < diff.LaserProb:
		d.spawnLaserGate(f, z)
	case d.rng.Float64() < diff.BarrierProb:
		d.spawnBarrier(f, diff, z)
	case d.rng.Float64() < diff.SpikeProb:
		d.spawnSpikeCluster(f, z)
	case d.rng.Float64() < diff.TurretProb:
		d.spawnAt(KindTurret, f, z, core.ColorGray)
	case d.rng.Float64() < diff.DroneProb:
		d.spawnDrone(f, z)
	case d.rng.Float64() < diff.AlienProb:
		d.spawnAlienSquad(f, diff, z)
	default:
		d.spawnObstacleLine(f, diff, z)
	}
}

// spawnGroundItem rolls among jump pad, speed boost, power-up and plain gem.
func (d *Driver) spawnGroundItem(f Frame, diff config.Difficulty, z float64) {
	switch {
	case d.rng.Float64() < diff.JumpPadProb:
		d.spawnAt(KindJumpPad, f, z, core.ColorGreen)
	case d.rng.Float64() < diff.SpeedBoostProb:
		d.spawnAt(KindSpeedBoost, f, z, core.ColorBlue)
	case d.rng.Float64() < diff.PowerUpProb:
		d.spawnPowerUp(f, z)
	default:
		lane := d.rng.Intn(f.LaneCount)
		d.reg.Spawn(Entity{
			Kind:  KindGem,
			Pos:   core.Vec3{X: d.laneX(lane, f.LaneCount), Y: d.cfg.Letters.FloatHeight, Z: z},
			Value: diff.GemValue,
			Color: core.ColorCyan,
		})
	}
}

// spawnAt places a single ground-level entity in a random lane.
func (d *Driver) spawnAt(k Kind, f Frame, z float64, c core.Color) {
	lane := d.rng.Intn(f.LaneCount)
	d.reg.Spawn(Entity{
		Kind:  k,
		Pos:   core.Vec3{X: d.laneX(lane, f.LaneCount), Z: z},
		Color: c,
	})
}

// spawnPowerUp picks magnet or shield with equal weight.
func (d *Driver) spawnPowerUp(f Frame, z float64) {
	kind := KindMagnet
	color := core.ColorMagenta
	if d.rng.Intn(2) == 1 {
		kind = KindShield
		color = core.ColorBlue
	}
	lane := d.rng.Intn(f.LaneCount)
	d.reg.Spawn(Entity{
		Kind:  kind,
		Pos:   core.Vec3{X: d.laneX(lane, f.LaneCount), Y: d.cfg.Letters.FloatHeight, Z: z},
		Color: color,
	})
}

// spawnLaserGate spans a beam across part of the corridor. A requested
// width wider than the corridor is clamped, not rejected.
func (d *Driver) spawnLaserGate(f Frame, z float64) {
	lanes := 2 + d.rng.Intn(f.LaneCount)
	if lanes > f.LaneCount {
		lanes = f.LaneCount
	}
	width := float64(lanes) * d.cfg.World.LaneWidth
	d.reg.Spawn(Entity{
		Kind:      KindLaserGate,
		Pos:       core.Vec3{X: 0, Y: d.cfg.Hazards.GateBandLow, Z: z},
		GateWidth: width,
		Color:     core.ColorRed,
	})
}

// spawnBarrier starts an oscillating wall with a random direction; its
// sweep speed scales with level through the difficulty table.
func (d *Driver) spawnBarrier(f Frame, diff config.Difficulty, z float64) {
	dir := 1.0
	if d.rng.Intn(2) == 1 {
		dir = -1.0
	}
	lane := d.rng.Intn(f.LaneCount)
	d.reg.Spawn(Entity{
		Kind:  KindBarrier,
		Pos:   core.Vec3{X: d.laneX(lane, f.LaneCount), Z: z},
		Dir:   dir,
		Speed: diff.BarrierSpeed,
		Color: core.ColorOrange,
	})
}

// spawnSpikeCluster lays spike floors across two or three distinct lanes.
func (d *Driver) spawnSpikeCluster(f Frame, z float64) {
	count := 2 + d.rng.Intn(2)
	if count > f.LaneCount {
		count = f.LaneCount
	}
	for _, lane := range d.rng.Perm(f.LaneCount)[:count] {
		d.reg.Spawn(Entity{
			Kind:  KindSpikeFloor,
			Pos:   core.Vec3{X: d.laneX(lane, f.LaneCount), Z: z},
			Color: core.ColorGray,
		})
	}
}

// spawnDrone starts a homing drone at flight height in a random lane.
func (d *Driver) spawnDrone(f Frame, z float64) {
	lane := d.rng.Intn(f.LaneCount)
	d.reg.Spawn(Entity{
		Kind:  KindDrone,
		Pos:   core.Vec3{X: d.laneX(lane, f.LaneCount), Y: 1.5, Z: z},
		Color: core.ColorMagenta,
	})
}

// spawnAlienSquad places 1-3 aliens across distinct shuffled lanes.
func (d *Driver) spawnAlienSquad(f Frame, diff config.Difficulty, z float64) {
	count := d.multiCount(diff)
	if count > f.LaneCount {
		count = f.LaneCount
	}
	for _, lane := range d.rng.Perm(f.LaneCount)[:count] {
		d.reg.Spawn(Entity{
			Kind:  KindAlien,
			Pos:   core.Vec3{X: d.laneX(lane, f.LaneCount), Z: z},
			Color: core.ColorGreen,
		})
	}
}

// spawnObstacleLine places 1-3 standard obstacles across distinct shuffled
// lanes. Each independently rolls a chance to carry a bonus item directly
// above it.
func (d *Driver) spawnObstacleLine(f Frame, diff config.Difficulty, z float64) {
	count := d.multiCount(diff)
	if count > f.LaneCount {
		count = f.LaneCount
	}
	for _, lane := range d.rng.Perm(f.LaneCount)[:count] {
		x := d.laneX(lane, f.LaneCount)
		d.reg.Spawn(Entity{
			Kind:  KindObstacle,
			Pos:   core.Vec3{X: x, Z: z},
			Color: core.ColorWhite,
		})
		if d.rng.Float64() < diff.BonusItemChance {
			d.spawnBonusItem(x, z, diff)
		}
	}
}

// spawnBonusItem floats a power-up or bonus gem above an obstacle, reachable
// with a jump.
func (d *Driver) spawnBonusItem(x, z float64, diff config.Difficulty) {
	pos := core.Vec3{X: x, Y: d.cfg.Hazards.ObstacleHeight + 1.0, Z: z}
	if d.rng.Float64() < diff.PowerUpProb*2 {
		kind := KindMagnet
		color := core.ColorMagenta
		if d.rng.Intn(2) == 1 {
			kind = KindShield
			color = core.ColorBlue
		}
		d.reg.Spawn(Entity{Kind: kind, Pos: pos, Color: color})
		return
	}
	d.reg.Spawn(Entity{Kind: KindGem, Pos: pos, Value: diff.BonusGemValue, Color: core.ColorCyan})
}

// multiCount rolls how many entities a multi-spawn places, weighted by level.
func (d *Driver) multiCount(diff config.Difficulty) int {
	r := d.rng.Float64()
	switch {
	case r < diff.TripleProb:
		return 3
	case r < diff.TripleProb+diff.DoubleProb:
		return 2
	default:
		return 1
	}
}
