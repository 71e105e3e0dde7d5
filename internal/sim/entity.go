// Package sim implements the corridor simulation core: a deterministic,
// tick-driven world of obstacles, enemies, collectibles and hazards advancing
// toward the player. The simulation owns no rendering, audio or persistent
// game state; it consumes an input Frame each tick and produces ordered
// events plus an entity snapshot.
package sim

import "github.com/vovakirdan/skyrush/internal/core"

// Kind discriminates the closed set of entity variants.
type Kind uint8

const (
	KindObstacle Kind = iota
	KindGem
	KindLetter
	KindShopPortal
	KindAlien
	KindMissile
	KindMagnet
	KindShield
	KindDrone
	KindLaserGate
	KindBarrier
	KindSpikeFloor
	KindTurret
	KindJumpPad
	KindSpeedBoost
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindGem:
		return "gem"
	case KindLetter:
		return "letter"
	case KindShopPortal:
		return "shop_portal"
	case KindAlien:
		return "alien"
	case KindMissile:
		return "missile"
	case KindMagnet:
		return "magnet"
	case KindShield:
		return "shield"
	case KindDrone:
		return "drone"
	case KindLaserGate:
		return "laser_gate"
	case KindBarrier:
		return "barrier"
	case KindSpikeFloor:
		return "spike_floor"
	case KindTurret:
		return "turret"
	case KindJumpPad:
		return "jump_pad"
	case KindSpeedBoost:
		return "speed_boost"
	default:
		return "unknown"
	}
}

// IsDamage reports whether the kind is a damage source on contact.
func (k Kind) IsDamage() bool {
	switch k {
	case KindObstacle, KindAlien, KindMissile, KindDrone, KindLaserGate,
		KindBarrier, KindSpikeFloor, KindTurret:
		return true
	}
	return false
}

// IsPickup reports whether the kind is collected on contact.
func (k Kind) IsPickup() bool {
	switch k {
	case KindGem, KindLetter, KindMagnet, KindShield:
		return true
	}
	return false
}

// TrackDefining reports whether the kind anchors the spawn horizon.
// Projectiles and drones chase the player and do not define the front
// of the track.
func (k Kind) TrackDefining() bool {
	return k != KindMissile && k != KindDrone
}

// ID is an opaque entity handle. Handles stay valid across registry
// compaction; a stale handle simply resolves to nil.
type ID uint64

// Entity is a tagged union over the Kind variants. Payload fields are
// meaningful only for the kinds that use them.
type Entity struct {
	ID     ID
	Kind   Kind
	Pos    core.Vec3
	PrevZ  float64 // Forward coordinate at the start of this tick
	Active bool

	Value       int        // Gem point value
	LetterIndex int        // Letter: index into the target word
	Color       core.Color // Effect tint on destruction/collection
	Dir         float64    // Barrier: oscillation direction, ±1
	Speed       float64    // Barrier: oscillation speed
	HasFired    bool       // Turret/Alien: one-shot guard
	GateWidth   float64    // LaserGate: beam width in world units
}
