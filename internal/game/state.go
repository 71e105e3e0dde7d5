// Package game holds the host-owned run state that the simulation core
// reads from and signals into: score, lives, level, power-up timers and the
// letter-collection progress. The simulation never mutates this directly;
// the host applies the tick's event queue here after each step.
package game

import (
	"github.com/vovakirdan/skyrush/internal/config"
	"github.com/vovakirdan/skyrush/internal/sim"
)

// Store is the persistent state of one run.
type Store struct {
	Score    int
	Gems     int
	Lives    int
	Level    int
	Distance float64

	Collected []bool // Per target-word letter index

	MagnetUntil float64 // Host-clock expiry timestamps
	ShieldUntil float64
	BoostUntil  float64

	ShopOpen bool
	Won      bool

	cfg config.RunnerConfig
}

// NewStore creates the run state for level 1 with the configured word.
func NewStore(cfg config.RunnerConfig) *Store {
	return &Store{
		Lives:     3,
		Level:     1,
		Collected: make([]bool, len(cfg.Letters.Word)),
		cfg:       cfg,
	}
}

// Reset restores the store for a fresh run.
func (s *Store) Reset() {
	s.Score = 0
	s.Gems = 0
	s.Lives = 3
	s.Level = 1
	s.Distance = 0
	s.Collected = make([]bool, len(s.cfg.Letters.Word))
	s.MagnetUntil = 0
	s.ShieldUntil = 0
	s.BoostUntil = 0
	s.ShopOpen = false
	s.Won = false
}

// WorldSpeed returns the current scroll speed: the level curve plus any
// live speed boost.
func (s *Store) WorldSpeed(now float64) float64 {
	speed := s.cfg.World.WorldSpeed(s.Level)
	if s.BoostUntil > now {
		speed *= 1.3
	}
	return speed
}

// Word returns the target word being spelled.
func (s *Store) Word() string {
	return s.cfg.Letters.Word
}

// LivesDepleted reports whether the run should end.
func (s *Store) LivesDepleted() bool {
	return s.Lives <= 0
}

// Apply folds one simulation event into the run state. now is the host
// clock in seconds, used to start power-up timers.
func (s *Store) Apply(ev sim.Event, now float64) {
	switch e := ev.(type) {
	case sim.PlayerDamagedEvent:
		if s.Lives > 0 {
			s.Lives--
		}
	case sim.GemCollectedEvent:
		s.Score += e.Value
		s.Gems++
	case sim.LetterCollectedEvent:
		if e.Index >= 0 && e.Index < len(s.Collected) {
			s.Collected[e.Index] = true
		}
	case sim.MagnetActivatedEvent:
		s.MagnetUntil = now + s.cfg.Magnet.Duration
	case sim.ShieldActivatedEvent:
		s.ShieldUntil = now + s.cfg.Magnet.Duration
	case sim.SpeedBoostCollectedEvent:
		s.BoostUntil = now + 4
	case sim.ShopEnteredEvent:
		s.ShopOpen = true
	case sim.LevelCompletedEvent:
		s.Level++
		for i := range s.Collected {
			s.Collected[i] = false
		}
	case sim.RunWonEvent:
		s.Won = true
	case sim.DistanceFinalEvent:
		s.Distance = e.Distance
	}
}

// Frame assembles the simulation input snapshot for this tick.
func (s *Store) Frame(p *Player, now float64, status sim.Status) sim.Frame {
	return sim.Frame{
		PlayerPos:   p.Pos,
		PlayerOK:    true,
		WorldSpeed:  s.WorldSpeed(now),
		Level:       s.Level,
		LaneCount:   s.cfg.World.LaneCount,
		Now:         now,
		MagnetUntil: s.MagnetUntil,
		ShieldUntil: s.ShieldUntil,
		Collected:   s.Collected,
		Status:      status,
	}
}
