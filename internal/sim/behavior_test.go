package sim

import (
	"testing"

	"github.com/vovakirdan/skyrush/internal/config"
	"github.com/vovakirdan/skyrush/internal/core"
)

func testDriver(seed int64) *Driver {
	d := New(config.DefaultRunnerConfig(), seed)
	d.Start()
	return d
}

func testFrame(cfg config.RunnerConfig) Frame {
	return Frame{
		PlayerPos:  core.Vec3{X: 0, Y: 0, Z: 0},
		PlayerOK:   true,
		WorldSpeed: cfg.World.BaseSpeed,
		Level:      1,
		LaneCount:  cfg.World.LaneCount,
		Collected:  make([]bool, len(cfg.Letters.Word)),
		Status:     StatusRunning,
	}
}

func TestUniformAdvance(t *testing.T) {
	d := testDriver(1)
	f := testFrame(d.cfg)

	obstacle := d.reg.Spawn(Entity{Kind: KindObstacle, Pos: core.Vec3{Z: -100}})
	missile := d.reg.Spawn(Entity{Kind: KindMissile, Pos: core.Vec3{Z: -100}})

	d.stepBehaviors(0.05, f)

	oz := d.reg.Get(obstacle).Pos.Z
	mz := d.reg.Get(missile).Pos.Z

	wantObstacle := -100 + f.WorldSpeed*0.05
	if core.AbsF(oz-wantObstacle) > 1e-9 {
		t.Errorf("obstacle z = %v, want %v", oz, wantObstacle)
	}
	if mz <= oz {
		t.Error("missiles must close on the player faster than world scroll")
	}
}

func TestMagnetPullUnderRadius(t *testing.T) {
	d := testDriver(1)
	f := testFrame(d.cfg)
	f.WorldSpeed = 0 // Isolate the pull
	f.Now = 1
	f.MagnetUntil = 10

	// Lateral distance 35: inside the 40-unit radius
	near := d.reg.Spawn(Entity{Kind: KindGem, Pos: core.Vec3{X: 35, Y: 1.4, Z: 0}})
	// Distance 45: outside
	far := d.reg.Spawn(Entity{Kind: KindGem, Pos: core.Vec3{X: 45, Y: 1.4, Z: 0}})

	d.stepBehaviors(0.016, f)

	if got := d.reg.Get(near).Pos.X; got >= 35 {
		t.Errorf("gem inside the magnet radius must move strictly toward the player, x = %v", got)
	}
	if got := d.reg.Get(far).Pos.X; got != 45 {
		t.Errorf("gem outside the magnet radius must not move, x = %v", got)
	}

	// Vertical coordinate lerps toward the player as well
	if got := d.reg.Get(near).Pos.Y; got >= 1.4 {
		t.Errorf("pulled gem should sink toward the player's height, y = %v", got)
	}
}

func TestMagnetInactiveNoPull(t *testing.T) {
	d := testDriver(1)
	f := testFrame(d.cfg)
	f.WorldSpeed = 0
	f.Now = 10
	f.MagnetUntil = 5 // Expired

	gem := d.reg.Spawn(Entity{Kind: KindGem, Pos: core.Vec3{X: 10, Z: 0}})
	d.stepBehaviors(0.016, f)

	if got := d.reg.Get(gem).Pos.X; got != 10 {
		t.Errorf("expired magnet must not pull, x = %v", got)
	}
}

func TestDroneTracksOnlyWhileAhead(t *testing.T) {
	d := testDriver(1)
	f := testFrame(d.cfg)
	f.PlayerPos = core.Vec3{X: 8, Y: 0, Z: 0}
	f.WorldSpeed = 0

	tests := []struct {
		name      string
		z         float64
		wantTrack bool
	}{
		{"well ahead", -30, true},
		{"just past the lead margin", -5.5, true},
		{"inside the lead margin", -3, false},
		{"alongside the player", 0, false},
		{"already passed", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := d.reg.Spawn(Entity{Kind: KindDrone, Pos: core.Vec3{X: 0, Y: 1.5, Z: tt.z}})
			d.stepBehaviors(0.016, f)

			moved := d.reg.Get(id).Pos.X != 0
			if moved != tt.wantTrack {
				t.Errorf("drone at z=%v: tracked=%v, want %v", tt.z, moved, tt.wantTrack)
			}
			d.reg.Retire(id)
			d.reg.Compact(d.cfg.World.RemovalDistance)
		})
	}
}

func TestBarrierOscillationFlipsAtBoundary(t *testing.T) {
	d := testDriver(1)
	f := testFrame(d.cfg)
	f.WorldSpeed = 0

	bound := float64(f.LaneCount) * d.cfg.World.LaneWidth / 2
	id := d.reg.Spawn(Entity{
		Kind:  KindBarrier,
		Pos:   core.Vec3{X: bound - 0.1, Z: -50},
		Dir:   1,
		Speed: 50,
	})

	d.stepBehaviors(0.1, f)

	e := d.reg.Get(id)
	if e.Pos.X > bound {
		t.Errorf("barrier must clamp at the lane boundary, x = %v > %v", e.Pos.X, bound)
	}
	if e.Dir != -1 {
		t.Errorf("barrier must flip direction at the boundary, dir = %v", e.Dir)
	}
}

func TestTurretFiresExactlyOnce(t *testing.T) {
	d := testDriver(1)
	f := testFrame(d.cfg)
	f.WorldSpeed = 40 // Crosses the -80 trigger in one 50ms tick

	turret := d.reg.Spawn(Entity{Kind: KindTurret, Pos: core.Vec3{Z: -81}})

	d.stepBehaviors(0.05, f)

	if !d.reg.Get(turret).HasFired {
		t.Fatal("turret crossing the trigger must set HasFired")
	}
	missiles := countKind(d, KindMissile)
	if missiles != 1 {
		t.Fatalf("turret must fire exactly one missile, got %d", missiles)
	}

	// Second tick well past the trigger: no further fire
	d.stepBehaviors(0.05, f)
	if got := countKind(d, KindMissile); got != 1 {
		t.Errorf("turret fired again, missiles = %d", got)
	}
}

func TestAlienTriggerDeeperThanTurret(t *testing.T) {
	d := testDriver(1)
	f := testFrame(d.cfg)
	f.WorldSpeed = 0

	alien := d.reg.Spawn(Entity{Kind: KindAlien, Pos: core.Vec3{Z: -85}})
	d.stepBehaviors(0.016, f)

	// -85 is past the alien trigger (-90) but a turret there would not
	// have fired yet (-80)
	if !d.reg.Get(alien).HasFired {
		t.Error("alien past -90 must have fired")
	}

	turret := d.reg.Spawn(Entity{Kind: KindTurret, Pos: core.Vec3{Z: -85}})
	d.stepBehaviors(0.016, f)
	if d.reg.Get(turret).HasFired {
		t.Error("turret at -85 must not fire before crossing -80")
	}
}

func TestForwardMotionMonotonicExceptMagnetGems(t *testing.T) {
	d := testDriver(7)
	f := testFrame(d.cfg)
	f.Level = 6 // All hazard types unlocked

	for tick := 0; tick < 400; tick++ {
		before := map[ID]float64{}
		for i := 0; i < d.reg.Len(); i++ {
			e := d.reg.At(i)
			if e.Active {
				before[e.ID] = e.Pos.Z
			}
		}

		d.Tick(0.016, f)

		for i := 0; i < d.reg.Len(); i++ {
			e := d.reg.At(i)
			prev, seen := before[e.ID]
			if !seen || e.Kind == KindGem {
				continue
			}
			if e.Pos.Z < prev {
				t.Fatalf("tick %d: %s moved backward on the forward axis (%v -> %v)",
					tick, e.Kind, prev, e.Pos.Z)
			}
		}
	}
}

func countKind(d *Driver, k Kind) int {
	n := 0
	for i := 0; i < d.reg.Len(); i++ {
		if e := d.reg.At(i); e.Active && e.Kind == k {
			n++
		}
	}
	return n
}
