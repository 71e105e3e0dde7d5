package game

import (
	"github.com/vovakirdan/skyrush/internal/config"
	"github.com/vovakirdan/skyrush/internal/core"
)

// Player is the host-owned player transform. The simulation reads its
// position once per tick and never mutates it.
type Player struct {
	Pos core.Vec3

	lane     int // Target lane index, 0..laneCount-1
	vy       float64
	grounded bool

	cfg   config.PlayerConfig
	world config.WorldConfig
}

// NewPlayer places the player grounded in the center lane at the origin.
func NewPlayer(cfg config.PlayerConfig, world config.WorldConfig) *Player {
	return &Player{
		lane:     world.LaneCount / 2,
		grounded: true,
		cfg:      cfg,
		world:    world,
	}
}

// Reset recenters the player for a fresh run.
func (p *Player) Reset() {
	p.Pos = core.Vec3{}
	p.lane = p.world.LaneCount / 2
	p.vy = 0
	p.grounded = true
}

// Lane returns the current target lane index.
func (p *Player) Lane() int {
	return p.lane
}

// Grounded reports whether the player is on the ground.
func (p *Player) Grounded() bool {
	return p.grounded
}

// MoveLeft shifts the target lane one step toward the left wall.
func (p *Player) MoveLeft() {
	if p.lane > 0 {
		p.lane--
	}
}

// MoveRight shifts the target lane one step toward the right wall.
func (p *Player) MoveRight() {
	if p.lane < p.world.LaneCount-1 {
		p.lane++
	}
}

// Jump launches the player if grounded.
func (p *Player) Jump() {
	if p.grounded {
		p.vy = p.cfg.JumpImpulse
		p.grounded = false
	}
}

// Launch is the jump-pad boost: a stronger impulse that works even
// mid-air.
func (p *Player) Launch() {
	p.vy = p.cfg.JumpImpulse * 1.5
	p.grounded = false
}

// Update advances lane easing and vertical physics by one tick.
func (p *Player) Update(dt float64) {
	targetX := float64(p.lane-p.world.LaneCount/2) * p.world.LaneWidth
	p.Pos.X = core.Lerp(p.Pos.X, targetX, dt*p.cfg.LaneSnap)

	if !p.grounded {
		p.Pos.Y += p.vy * dt
		p.vy -= p.cfg.Gravity * dt
		if p.Pos.Y <= 0 {
			p.Pos.Y = 0
			p.vy = 0
			p.grounded = true
		}
	}
}
