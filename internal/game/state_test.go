package game

import (
	"testing"

	"github.com/vovakirdan/skyrush/internal/config"
	"github.com/vovakirdan/skyrush/internal/sim"
)

func TestStoreAppliesEvents(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewStore(cfg)

	s.Apply(sim.GemCollectedEvent{Value: 25}, 0)
	if s.Score != 25 || s.Gems != 1 {
		t.Errorf("after gem: score=%d gems=%d, want 25/1", s.Score, s.Gems)
	}

	s.Apply(sim.PlayerDamagedEvent{Source: sim.KindObstacle}, 0)
	if s.Lives != 2 {
		t.Errorf("after damage: lives=%d, want 2", s.Lives)
	}

	s.Apply(sim.LetterCollectedEvent{Index: 3}, 0)
	if !s.Collected[3] {
		t.Error("letter index 3 not marked collected")
	}

	s.Apply(sim.MagnetActivatedEvent{}, 10)
	if s.MagnetUntil != 10+cfg.Magnet.Duration {
		t.Errorf("magnet expiry = %v, want %v", s.MagnetUntil, 10+cfg.Magnet.Duration)
	}

	s.Apply(sim.LevelCompletedEvent{Level: 1}, 0)
	if s.Level != 2 {
		t.Errorf("after level completion: level=%d, want 2", s.Level)
	}
	if s.Collected[3] {
		t.Error("letter set must reset on level up")
	}

	s.Apply(sim.DistanceFinalEvent{Distance: 1234.5}, 0)
	if s.Distance != 1234.5 {
		t.Errorf("final distance = %v, want 1234.5", s.Distance)
	}
}

func TestStoreWorldSpeed(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewStore(cfg)

	base := s.WorldSpeed(0)
	s.Level = 3
	if s.WorldSpeed(0) <= base {
		t.Error("world speed must grow with level")
	}

	s.Apply(sim.SpeedBoostCollectedEvent{}, 0)
	boosted := s.WorldSpeed(1) // Boost still live
	if boosted <= s.WorldSpeed(100) {
		t.Error("a live speed boost must raise the world speed")
	}
}

func TestStoreOutOfRangeLetterIgnored(t *testing.T) {
	s := NewStore(config.DefaultRunnerConfig())

	// Clamped, never a panic
	s.Apply(sim.LetterCollectedEvent{Index: -1}, 0)
	s.Apply(sim.LetterCollectedEvent{Index: 999}, 0)
}

func TestPlayerLaneMovement(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg.Player, cfg.World)

	center := cfg.World.LaneCount / 2
	if p.Lane() != center {
		t.Fatalf("player starts in lane %d, want center %d", p.Lane(), center)
	}

	// Clamp at the left wall
	for i := 0; i < cfg.World.LaneCount+2; i++ {
		p.MoveLeft()
	}
	if p.Lane() != 0 {
		t.Errorf("lane after overshoot left = %d, want 0", p.Lane())
	}

	p.MoveRight()
	for i := 0; i < 200; i++ {
		p.Update(0.016)
	}

	wantX := float64(1-center) * cfg.World.LaneWidth
	if diff := p.Pos.X - wantX; diff > 0.01 || diff < -0.01 {
		t.Errorf("player x = %v, want about %v", p.Pos.X, wantX)
	}
}

func TestPlayerJumpArc(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg.Player, cfg.World)

	p.Jump()
	if p.Grounded() {
		t.Fatal("jump must leave the ground")
	}

	peak := 0.0
	for i := 0; i < 300 && !p.Grounded(); i++ {
		p.Update(0.016)
		if p.Pos.Y > peak {
			peak = p.Pos.Y
		}
	}

	if !p.Grounded() {
		t.Fatal("player never landed")
	}
	if p.Pos.Y != 0 {
		t.Errorf("landed y = %v, want 0", p.Pos.Y)
	}
	if peak <= cfg.Hazards.LowBandHeight {
		t.Errorf("jump peak %v must clear the low hazard band %v", peak, cfg.Hazards.LowBandHeight)
	}

	// Mid-air jumps are ignored; pad launches are not
	p.Jump()
	p.Update(0.016)
	before := p.vy
	p.Jump()
	if p.vy != before {
		t.Error("mid-air jump must be ignored")
	}
	p.Launch()
	if p.vy <= before {
		t.Error("pad launch must boost even mid-air")
	}
}
