package sim

import (
	"testing"

	"github.com/vovakirdan/skyrush/internal/core"
)

func TestFallbackHorizonSeedsEmptyTrack(t *testing.T) {
	d := testDriver(3)
	f := testFrame(d.cfg)

	if d.reg.Len() != 0 {
		t.Fatal("registry should start empty")
	}

	// A spawn tick may roll the skip branch; a handful of ticks cannot
	// all skip.
	for i := 0; i < 20 && d.reg.Len() == 0; i++ {
		d.planSpawn(f)
	}

	if d.reg.Len() == 0 {
		t.Fatal("empty registry must spawn from the fallback horizon")
	}
	for i := 0; i < d.reg.Len(); i++ {
		z := d.reg.At(i).Pos.Z
		if z > d.cfg.World.FallbackHorizon {
			t.Errorf("fresh spawn at z=%v, want at or beyond the fallback horizon %v",
				z, d.cfg.World.FallbackHorizon)
		}
		if z < -d.cfg.World.SpawnAhead {
			t.Errorf("spawn at z=%v exceeds the spawn-ahead limit", z)
		}
	}
}

func TestSpawnGateBlocksFullTrack(t *testing.T) {
	d := testDriver(3)
	f := testFrame(d.cfg)

	// Track already extends to the spawn-ahead limit: no room
	d.reg.Spawn(Entity{Kind: KindObstacle, Pos: core.Vec3{Z: -d.cfg.World.SpawnAhead}})
	before := d.reg.Len()

	d.planSpawn(f)

	if d.reg.Len() != before {
		t.Error("spawning must be gated while the horizon is at the spawn-ahead limit")
	}
}

func TestLevelOneNeverSpawnsLockedHazards(t *testing.T) {
	d := testDriver(99)
	f := testFrame(d.cfg)

	locked := map[Kind]bool{
		KindLaserGate:  true,
		KindBarrier:    true,
		KindSpikeFloor: true,
		KindTurret:     true,
		KindDrone:      true,
		KindAlien:      true,
	}

	for tick := 0; tick < 2000; tick++ {
		d.planSpawn(f)
		for i := 0; i < d.reg.Len(); i++ {
			if k := d.reg.At(i).Kind; locked[k] {
				t.Fatalf("level 1 spawned a locked hazard: %s", k)
			}
		}
		d.reg.Clear() // Re-trigger the fallback horizon every iteration
	}
}

func TestMultiSpawnDistinctLanes(t *testing.T) {
	d := testDriver(42)
	f := testFrame(d.cfg)
	f.Level = 6

	diff := d.cfg.Difficulty.ForLevel(d.cfg.Hazards, f.Level)

	for trial := 0; trial < 500; trial++ {
		d.spawnObstacleLine(f, diff, -80)

		lanes := map[float64]bool{}
		for i := 0; i < d.reg.Len(); i++ {
			e := d.reg.At(i)
			if e.Kind != KindObstacle {
				continue // Bonus items ride above obstacles in the same lane
			}
			if lanes[e.Pos.X] {
				t.Fatalf("trial %d: two obstacles share lane x=%v", trial, e.Pos.X)
			}
			lanes[e.Pos.X] = true
		}
		d.reg.Clear()
	}

	for trial := 0; trial < 500; trial++ {
		d.spawnAlienSquad(f, diff, -80)

		lanes := map[float64]bool{}
		for i := 0; i < d.reg.Len(); i++ {
			e := d.reg.At(i)
			if lanes[e.Pos.X] {
				t.Fatalf("trial %d: two aliens share lane x=%v", trial, e.Pos.X)
			}
			lanes[e.Pos.X] = true
		}
		d.reg.Clear()
	}
}

func TestLetterScheduleSkipsCollectedIndices(t *testing.T) {
	d := testDriver(11)
	f := testFrame(d.cfg)
	diff := d.cfg.Difficulty.ForLevel(d.cfg.Hazards, 1)

	// All but index 4 collected
	for i := range d.collected {
		d.collected[i] = i != 4
	}

	for trial := 0; trial < 50; trial++ {
		d.spawnLetterOrGem(f, diff, -80)
	}

	for i := 0; i < d.reg.Len(); i++ {
		e := d.reg.At(i)
		if e.Kind != KindLetter {
			t.Fatalf("unclaimed index remains: expected letters, got %s", e.Kind)
		}
		if e.LetterIndex != 4 {
			t.Fatalf("letter schedule re-offered collected index %d", e.LetterIndex)
		}
	}
}

func TestLetterScheduleDegradesToGems(t *testing.T) {
	d := testDriver(11)
	f := testFrame(d.cfg)
	diff := d.cfg.Difficulty.ForLevel(d.cfg.Hazards, 2)

	for i := range d.collected {
		d.collected[i] = true
	}

	d.spawnLetterOrGem(f, diff, -80)

	if d.reg.Len() != 1 {
		t.Fatalf("expected exactly one spawn, got %d", d.reg.Len())
	}
	e := d.reg.At(0)
	if e.Kind != KindGem {
		t.Fatalf("exhausted letter objective must degrade to a gem, got %s", e.Kind)
	}
	if e.Value != diff.BonusGemValue {
		t.Errorf("degraded gem value = %d, want bonus value %d", e.Value, diff.BonusGemValue)
	}
}

func TestLetterDueAdvancesThreshold(t *testing.T) {
	d := testDriver(5)
	f := testFrame(d.cfg)

	d.distance = d.nextLetterAt // Letter is due
	before := d.nextLetterAt

	d.planSpawn(f)

	if d.nextLetterAt <= before {
		t.Error("a due letter must advance the next-letter threshold")
	}
	if got := countKind(d, KindLetter); got != 1 {
		t.Errorf("letter-due tick spawned %d letters, want 1", got)
	}
}

func TestLaserGateWidthClamped(t *testing.T) {
	d := testDriver(13)
	f := testFrame(d.cfg)

	maxWidth := float64(f.LaneCount) * d.cfg.World.LaneWidth
	for trial := 0; trial < 200; trial++ {
		d.spawnLaserGate(f, -80)
	}
	for i := 0; i < d.reg.Len(); i++ {
		if w := d.reg.At(i).GateWidth; w > maxWidth {
			t.Fatalf("gate width %v exceeds the corridor width %v", w, maxWidth)
		}
	}
}

func TestSpawnHorizonIgnoresChasers(t *testing.T) {
	d := testDriver(17)

	d.reg.Spawn(Entity{Kind: KindMissile, Pos: core.Vec3{Z: -300}})
	d.reg.Spawn(Entity{Kind: KindDrone, Pos: core.Vec3{Z: -250}})
	d.reg.Spawn(Entity{Kind: KindObstacle, Pos: core.Vec3{Z: -40}})

	horizon, ok := d.trackHorizon()
	if !ok {
		t.Fatal("track-defining entity present, horizon must exist")
	}
	if horizon != -40 {
		t.Errorf("horizon = %v, want -40 (missiles and drones never define the front)", horizon)
	}
}
