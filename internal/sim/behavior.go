package sim

import "github.com/vovakirdan/skyrush/internal/core"

// stepBehaviors runs the per-variant update rules for every live entity.
// Entities spawned during the pass (missiles) are not stepped until the
// next tick; iteration is bounded by the pre-pass length.
func (d *Driver) stepBehaviors(dt float64, f Frame) {
	n := d.reg.Len()
	for i := 0; i < n; i++ {
		e := d.reg.At(i)
		if !e.Active {
			continue
		}

		// Uniform advance toward the player. PrevZ anchors the swept
		// collision window for this tick.
		e.PrevZ = e.Pos.Z
		e.Pos.Z += f.WorldSpeed * dt
		if e.Kind == KindMissile {
			e.Pos.Z += d.cfg.Hazards.MissileSpeed * dt
		}

		switch e.Kind {
		case KindGem:
			d.pullGem(e, dt, f)
		case KindDrone:
			d.trackDrone(e, dt, f)
		case KindBarrier:
			d.oscillateBarrier(e, dt, f)
		case KindTurret:
			d.fireOnce(e, d.cfg.Hazards.TurretTriggerZ)
		case KindAlien:
			d.fireOnce(e, d.cfg.Hazards.AlienTriggerZ)
		}
	}
}

// pullGem draws a gem toward the player while the magnet power-up is live.
// The pull is a lerp, not a snap, and only engages under the magnet radius
// measured on the ground plane.
func (d *Driver) pullGem(e *Entity, dt float64, f Frame) {
	if !f.MagnetActive() || !f.PlayerOK {
		return
	}
	if e.Pos.DistXZ(f.PlayerPos) >= d.cfg.Magnet.Radius {
		return
	}
	t := dt * d.cfg.Magnet.PullRate
	e.Pos.X = core.Lerp(e.Pos.X, f.PlayerPos.X, t)
	e.Pos.Y = core.Lerp(e.Pos.Y, f.PlayerPos.Y, t)
	e.Pos.Z = core.Lerp(e.Pos.Z, f.PlayerPos.Z, t)
}

// trackDrone homes the drone's lane coordinate toward the player, but only
// while the drone still leads the player by more than the lead margin.
// Without the margin a drone snaps sideways right as it passes.
func (d *Driver) trackDrone(e *Entity, dt float64, f Frame) {
	if !f.PlayerOK {
		return
	}
	if e.Pos.Z >= f.PlayerPos.Z-d.cfg.Hazards.DroneLeadMargin {
		return
	}
	e.Pos.X = core.Lerp(e.Pos.X, f.PlayerPos.X, dt*d.cfg.Hazards.DroneTrackRate)
}

// oscillateBarrier sweeps the barrier across the corridor, clamping and
// reversing at the lane boundaries.
func (d *Driver) oscillateBarrier(e *Entity, dt float64, f Frame) {
	bound := float64(f.LaneCount) * d.cfg.World.LaneWidth / 2
	e.Pos.X += e.Dir * e.Speed * dt
	if e.Pos.X >= bound {
		e.Pos.X = bound
		e.Dir = -1
	} else if e.Pos.X <= -bound {
		e.Pos.X = -bound
		e.Dir = 1
	}
}

// fireOnce spawns a missile the first time the firer crosses its trigger
// coordinate. The HasFired guard holds however long the firer stays alive.
func (d *Driver) fireOnce(e *Entity, triggerZ float64) {
	if e.HasFired || e.Pos.Z <= triggerZ {
		return
	}
	e.HasFired = true
	muzzle := core.Vec3{X: e.Pos.X, Y: 1.0, Z: e.Pos.Z + d.cfg.Hazards.MuzzleOffset}
	d.reg.Spawn(Entity{
		Kind:  KindMissile,
		Pos:   muzzle,
		Color: core.ColorOrange,
	})
	d.emit(EffectEvent{Pos: muzzle, Color: core.ColorOrange})
	d.emit(AudioCueEvent{Cue: CueFire})
}
