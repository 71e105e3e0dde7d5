package sim

import (
	"math/rand"

	"github.com/vovakirdan/skyrush/internal/config"
	"github.com/vovakirdan/skyrush/internal/core"
)

// State is the driver's run state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateLevelTransition
	StateTerminal
)

// String returns the name of the driver state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateLevelTransition:
		return "level_transition"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Driver orchestrates the simulation tick: advance distance, run behaviors,
// resolve collisions, plan spawns, compact the registry and publish the
// result. It exclusively owns the registry; no other component holds a
// mutable reference across tick boundaries.
type Driver struct {
	cfg config.RunnerConfig
	rng *rand.Rand
	reg *Registry

	state        State
	tick         uint64
	distance     float64
	nextLetterAt float64
	collected    []bool // Local view of the letter set, synced each tick

	events []Event
}

// New creates a driver in the Idle state. All randomness flows through the
// seeded generator so runs are reproducible.
func New(cfg config.RunnerConfig, seed int64) *Driver {
	return &Driver{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		reg: NewRegistry(),
	}
}

// State returns the current driver state.
func (d *Driver) State() State {
	return d.state
}

// Distance returns the cumulative forward distance of the current run.
func (d *Driver) Distance() float64 {
	return d.distance
}

// EntityCount returns the number of live entities, for diagnostics.
func (d *Driver) EntityCount() int {
	n := 0
	for i := 0; i < d.reg.Len(); i++ {
		if d.reg.At(i).Active {
			n++
		}
	}
	return n
}

// Start begins a run from Idle.
func (d *Driver) Start() {
	if d.state != StateIdle {
		return
	}
	d.hardReset()
	d.state = StateRunning
}

// Restart performs a hard reset out of any state and enters Running.
// Used for the explicit external restart from Terminal.
func (d *Driver) Restart(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
	d.hardReset()
	d.state = StateRunning
}

// Stop returns the driver to Idle, discarding the run.
func (d *Driver) Stop() {
	d.hardReset()
	d.state = StateIdle
}

// Halt moves a running simulation to Terminal. The host calls this on life
// depletion. The final distance is reported once, here.
func (d *Driver) Halt() []Event {
	if d.state != StateRunning {
		return nil
	}
	d.state = StateTerminal
	return []Event{DistanceFinalEvent{Distance: d.distance}}
}

func (d *Driver) hardReset() {
	d.reg.Clear()
	d.tick = 0
	d.distance = 0
	d.nextLetterAt = d.cfg.Letters.LetterInterval(1)
	d.collected = make([]bool, len(d.cfg.Letters.Word))
	d.events = d.events[:0]
}

// Tick advances the simulation by one step. The frame snapshot is the only
// external state read; it is not re-read mid-tick. Elapsed time is clamped
// to the configured maximum so frame hitches cannot spiral the physics.
func (d *Driver) Tick(dt float64, f Frame) TickResult {
	if d.state != StateRunning || f.Status != StatusRunning {
		return TickResult{Entities: d.snapshotEntities()}
	}

	dt = core.ClampF(dt, 0, d.cfg.World.MaxDelta)
	d.tick++
	d.distance += f.WorldSpeed * dt
	d.syncCollected(f.Collected)

	// Fixed phase order: each phase sees the previous phase's fully
	// settled state.
	d.stepBehaviors(dt, f)
	d.resolveCollisions(f)
	d.planSpawn(f)
	d.reg.Compact(d.cfg.World.RemovalDistance)

	if d.objectiveComplete() {
		if f.Level >= d.cfg.World.MaxLevel {
			d.state = StateTerminal
			d.emit(RunWonEvent{})
			d.emit(DistanceFinalEvent{Distance: d.distance})
		} else {
			d.levelTransition(f)
		}
	}

	events := d.events
	d.events = nil
	return TickResult{Events: events, Entities: d.snapshotEntities()}
}

// syncCollected adopts the externally-owned letter set at tick start.
// Letter pickups later in the tick update the local copy only; the host
// owns the authoritative set.
func (d *Driver) syncCollected(external []bool) {
	if len(d.collected) != len(d.cfg.Letters.Word) {
		d.collected = make([]bool, len(d.cfg.Letters.Word))
	}
	for i := range d.collected {
		d.collected[i] = i < len(external) && external[i]
	}
}

// objectiveComplete reports whether every target-word index is collected,
// counting letters picked up this tick.
func (d *Driver) objectiveComplete() bool {
	if len(d.collected) == 0 {
		return false
	}
	for _, got := range d.collected {
		if !got {
			return false
		}
	}
	return true
}

// levelTransition performs the soft reset between levels: far entities are
// pruned, a shop portal is injected far ahead, and the letter threshold is
// recomputed for the next level. The transition completes within the same
// tick boundary, so the driver is Running again when Tick returns.
func (d *Driver) levelTransition(f Frame) {
	d.state = StateLevelTransition

	d.reg.PruneAhead(d.cfg.World.FallbackHorizon)
	d.reg.Spawn(Entity{
		Kind:  KindShopPortal,
		Pos:   core.Vec3{Z: d.cfg.World.FallbackHorizon - 40},
		Color: core.ColorYellow,
	})

	d.nextLetterAt = d.distance + d.cfg.Letters.LetterInterval(f.Level+1)
	for i := range d.collected {
		d.collected[i] = false
	}

	d.emit(LevelCompletedEvent{Level: f.Level})
	d.state = StateRunning
}

// letterGlyph returns the rune for a target-word index.
func (d *Driver) letterGlyph(idx int) rune {
	word := []rune(d.cfg.Letters.Word)
	if idx < 0 || idx >= len(word) {
		return '?'
	}
	return word[idx]
}

func (d *Driver) emit(ev Event) {
	d.events = append(d.events, ev)
}
