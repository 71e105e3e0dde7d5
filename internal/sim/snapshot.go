package sim

import (
	"hash/fnv"
	"math"

	"github.com/vovakirdan/skyrush/internal/core"
)

// EntityView is one entity in the published snapshot. Views are copies;
// rendering can never mutate simulation state through them.
type EntityView struct {
	ID          ID
	Kind        Kind
	Pos         core.Vec3
	Value       int
	LetterIndex int
	Color       core.Color
	GateWidth   float64
	HasFired    bool
}

// TickResult is the output of one simulation tick: the ordered event queue
// and the entity snapshot for rendering.
type TickResult struct {
	Events   []Event
	Entities []EntityView
}

// snapshotEntities publishes the active entities in registry order.
func (d *Driver) snapshotEntities() []EntityView {
	views := make([]EntityView, 0, d.reg.Len())
	for i := 0; i < d.reg.Len(); i++ {
		e := d.reg.At(i)
		if !e.Active {
			continue
		}
		views = append(views, EntityView{
			ID:          e.ID,
			Kind:        e.Kind,
			Pos:         e.Pos,
			Value:       e.Value,
			LetterIndex: e.LetterIndex,
			Color:       e.Color,
			GateWidth:   e.GateWidth,
			HasFired:    e.HasFired,
		})
	}
	return views
}

// Snapshot captures the driver state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	State        State
	Distance     float64
	NextLetterAt float64
	EntityCount  int
	Entities     []EntityView
}

// Snapshot returns the current simulation snapshot.
func (d *Driver) Snapshot() Snapshot {
	return Snapshot{
		Tick:         d.tick,
		State:        d.state,
		Distance:     d.distance,
		NextLetterAt: d.nextLetterAt,
		EntityCount:  d.EntityCount(),
		Entities:     d.snapshotEntities(),
	}
}

// Hash folds the snapshot into a single value for cheap determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	put := func(v uint64) {
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}

	put(s.Tick)
	put(uint64(s.State))
	put(math.Float64bits(s.Distance))
	put(math.Float64bits(s.NextLetterAt))
	for _, e := range s.Entities {
		put(uint64(e.ID))
		put(uint64(e.Kind))
		put(math.Float64bits(e.Pos.X))
		put(math.Float64bits(e.Pos.Y))
		put(math.Float64bits(e.Pos.Z))
		put(uint64(e.Value))
	}
	return h.Sum64()
}
