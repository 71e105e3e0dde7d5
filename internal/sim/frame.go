package sim

import "github.com/vovakirdan/skyrush/internal/core"

// Status is the host-owned game status gating whether a tick executes.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusTerminal
)

// Frame is the per-tick snapshot of all external state the simulation reads.
// It is captured once at tick start; the simulation never re-reads host
// state mid-tick, so host mutations later in the same host frame cannot
// produce an internally inconsistent step.
type Frame struct {
	PlayerPos core.Vec3
	PlayerOK  bool // False while the player transform is not yet resolved

	WorldSpeed float64
	Level      int
	LaneCount  int

	Now         float64 // Host clock in seconds
	MagnetUntil float64 // Magnet power-up expiry on the host clock
	ShieldUntil float64

	Collected []bool // Per target-word index; read-only to the simulation

	Status Status
}

// MagnetActive reports whether the magnet power-up is live this tick.
func (f Frame) MagnetActive() bool {
	return f.MagnetUntil > f.Now
}

// ShieldActive reports whether the shield power-up is live this tick.
func (f Frame) ShieldActive() bool {
	return f.ShieldUntil > f.Now
}
