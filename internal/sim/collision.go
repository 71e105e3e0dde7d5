package sim

import (
	"math"

	"github.com/vovakirdan/skyrush/internal/core"
)

// resolveCollisions sweeps every active entity against the player capsule
// and classifies overlaps into damage, pickup or trigger outcomes. The
// forward window spans the entity's movement this tick so thin entities
// cannot tunnel through the player at high relative speed.
func (d *Driver) resolveCollisions(f Frame) {
	if !f.PlayerOK {
		// No player transform yet; skip collision this tick rather
		// than treating it as a fault.
		return
	}

	pz := f.PlayerPos.Z
	zone := d.cfg.Collision.ForwardZone

	n := d.reg.Len()
	for i := 0; i < n; i++ {
		e := d.reg.At(i)
		if !e.Active {
			continue
		}

		if e.Kind == KindShopPortal {
			// Simpler forward-only proximity trigger; never damage
			// or pickup.
			if core.AbsF(e.Pos.Z-pz) < d.cfg.Collision.PortalRange {
				d.reg.Retire(e.ID)
				d.emit(ShopEnteredEvent{})
				d.emit(AudioCueEvent{Cue: CueShop})
			}
			continue
		}

		lo := math.Min(e.PrevZ, e.Pos.Z)
		hi := math.Max(e.PrevZ, e.Pos.Z)
		if hi < pz-zone || lo > pz+zone {
			continue
		}

		if core.AbsF(e.Pos.X-f.PlayerPos.X) >= d.lateralThreshold(e.Kind, e.GateWidth) {
			continue
		}

		switch {
		case e.Kind.IsDamage():
			d.resolveDamage(e, f)
		case e.Kind.IsPickup():
			d.resolvePickup(e, f)
		case e.Kind == KindJumpPad:
			if d.verticalNear(e, f) {
				d.reg.Retire(e.ID)
				d.emit(JumpPadTriggeredEvent{})
				d.emit(AudioCueEvent{Cue: CueJump})
			}
		case e.Kind == KindSpeedBoost:
			if d.verticalNear(e, f) {
				d.reg.Retire(e.ID)
				d.emit(SpeedBoostCollectedEvent{})
				d.emit(AudioCueEvent{Cue: CueBoost})
			}
		}
	}
}

// lateralThreshold returns the lane-axis overlap distance for a kind.
// Magnet and shield pickups get wider forgiveness; a laser gate spans its
// configured beam width.
func (d *Driver) lateralThreshold(k Kind, gateWidth float64) float64 {
	switch k {
	case KindMagnet, KindShield:
		return d.cfg.Collision.LateralPickup
	case KindLaserGate:
		return gateWidth / 2
	default:
		return d.cfg.Collision.Lateral
	}
}

// verticalBand returns the vertical interval a damage source occupies.
func (d *Driver) verticalBand(e *Entity) (lo, hi float64) {
	hz := d.cfg.Hazards
	switch e.Kind {
	case KindLaserGate:
		// Elevated band: a grounded player passes under, a jumping
		// player clips it.
		return hz.GateBandLow, hz.GateBandHigh
	case KindSpikeFloor, KindTurret:
		// Low band cleared by a jump.
		return 0, hz.LowBandHeight
	case KindMissile, KindDrone:
		// Flying bodies occupy a band around their own height.
		return e.Pos.Y - 0.6, e.Pos.Y + 0.6
	default:
		return 0, hz.ObstacleHeight
	}
}

// resolveDamage applies a damage-source hit. A live shield absorbs the hit:
// the entity is still destroyed with its effect, but no damage is signaled.
func (d *Driver) resolveDamage(e *Entity, f Frame) {
	pLo := f.PlayerPos.Y
	pHi := f.PlayerPos.Y + d.cfg.Player.Height
	lo, hi := d.verticalBand(e)
	if !core.IntervalsOverlap(pLo, pHi, lo, hi) {
		return
	}

	d.reg.Retire(e.ID)
	d.emit(EffectEvent{Pos: e.Pos, Color: core.ColorRed})
	d.emit(AudioCueEvent{Cue: CueExplosion})
	if !f.ShieldActive() {
		d.emit(PlayerDamagedEvent{Source: e.Kind})
	}
}

// resolvePickup collects a floating pickup if the player is vertically near.
func (d *Driver) resolvePickup(e *Entity, f Frame) {
	if !d.verticalNear(e, f) {
		return
	}

	d.reg.Retire(e.ID)
	d.emit(EffectEvent{Pos: e.Pos, Color: e.Color})

	switch e.Kind {
	case KindGem:
		d.emit(GemCollectedEvent{Value: e.Value})
		d.emit(AudioCueEvent{Cue: CuePickup})
	case KindLetter:
		if e.LetterIndex >= 0 && e.LetterIndex < len(d.collected) {
			d.collected[e.LetterIndex] = true
		}
		d.emit(LetterCollectedEvent{Index: e.LetterIndex, Glyph: d.letterGlyph(e.LetterIndex)})
		d.emit(AudioCueEvent{Cue: CueLetter})
	case KindMagnet:
		d.emit(MagnetActivatedEvent{})
		d.emit(AudioCueEvent{Cue: CuePowerUp})
	case KindShield:
		d.emit(ShieldActivatedEvent{})
		d.emit(AudioCueEvent{Cue: CuePowerUp})
	}
}

// verticalNear is the looser proximity test for floating/bobbing items.
func (d *Driver) verticalNear(e *Entity, f Frame) bool {
	return core.AbsF(e.Pos.Y-f.PlayerPos.Y) < d.cfg.Collision.VerticalSlack
}
