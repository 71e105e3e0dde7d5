package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyrush/internal/config"
	"github.com/vovakirdan/skyrush/internal/game"
	"github.com/vovakirdan/skyrush/internal/sim"
	"github.com/vovakirdan/skyrush/internal/storage"
)

var (
	flagSimSeconds int
	flagSimConfig  string
	flagSimSave    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot simulation",
	Long: `Run the simulation without a terminal UI. A simple autopilot dodges
hazards and jumps low obstacles. Useful for balancing the difficulty
curve and for reproducing runs from a seed.

Examples:
  skyrush simulate
  skyrush simulate --seconds 300 --seed 42
  skyrush simulate --save`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimSeconds, "seconds", 120, "Simulated run length in seconds")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom runner config YAML")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the finished run to the database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyrush-sim",
	})

	cfg, err := config.LoadRunner(flagSimConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	driver := sim.New(cfg, seed)
	state := game.NewStore(cfg)
	player := game.NewPlayer(cfg.Player, cfg.World)
	driver.Start()

	logger.Info("starting run", "seed", seed, "seconds", flagSimSeconds, "fps", flagFPS)

	dt := 1.0 / float64(flagFPS)
	totalTicks := flagSimSeconds * flagFPS
	var now float64
	var entities []sim.EntityView
	nextReport := 10.0

	for tick := 0; tick < totalTicks; tick++ {
		steer(player, entities, cfg)
		player.Update(dt)
		now += dt

		result := driver.Tick(dt, state.Frame(player, now, sim.StatusRunning))
		entities = result.Entities

		for _, ev := range result.Events {
			state.Apply(ev, now)
			if _, ok := ev.(sim.JumpPadTriggeredEvent); ok {
				player.Launch()
			}
		}

		if state.LivesDepleted() && driver.State() != sim.StateTerminal {
			for _, ev := range driver.Halt() {
				state.Apply(ev, now)
			}
		}

		if driver.State() == sim.StateTerminal {
			break
		}

		if now >= nextReport {
			logger.Info("progress",
				"t", fmt.Sprintf("%.0fs", now),
				"distance", fmt.Sprintf("%.0fm", driver.Distance()),
				"score", state.Score,
				"level", state.Level,
				"lives", state.Lives,
			)
			nextReport += 10
		}
	}

	// A run that hits the tick limit is halted for its final distance.
	if driver.State() != sim.StateTerminal {
		for _, ev := range driver.Halt() {
			state.Apply(ev, now)
		}
	}

	letters := 0
	for _, got := range state.Collected {
		if got {
			letters++
		}
	}

	logger.Info("run finished",
		"distance", fmt.Sprintf("%.0fm", state.Distance),
		"score", state.Score,
		"gems", state.Gems,
		"level", state.Level,
		"letters", letters,
		"won", state.Won,
	)

	if !flagSimSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunEntry{
		Seed:     seed,
		Score:    state.Score,
		Distance: state.Distance,
		Level:    state.Level,
		Gems:     state.Gems,
		Letters:  letters,
		Won:      state.Won,
	})
	if err != nil {
		logger.Error("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)
}

// steer is the autopilot: jump what a jump clears, hold ground under
// laser gates, and otherwise switch away from the threatened lane.
func steer(p *game.Player, entities []sim.EntityView, cfg config.RunnerConfig) {
	laneW := cfg.World.LaneWidth
	half := laneW / 2

	var threat *sim.EntityView
	for i := range entities {
		e := &entities[i]
		if !e.Kind.IsDamage() {
			continue
		}
		// Only react inside the dodge window ahead of the player.
		if e.Pos.Z > 0 || e.Pos.Z < -25 {
			continue
		}
		lateral := e.Pos.X - p.Pos.X
		if e.Kind == sim.KindLaserGate {
			lateral = 0 // Gates span lanes; lateral dodging does not help
		}
		if lateral < -half || lateral > half {
			continue
		}
		if threat == nil || e.Pos.Z > threat.Pos.Z {
			threat = e
		}
	}

	if threat == nil {
		return
	}

	switch threat.Kind {
	case sim.KindLaserGate:
		// Grounded is safe; do nothing.
	case sim.KindSpikeFloor, sim.KindTurret:
		if p.Grounded() {
			p.Jump()
		}
	default:
		if threat.Pos.X >= p.Pos.X && p.Lane() > 0 {
			p.MoveLeft()
		} else {
			p.MoveRight()
		}
	}
}
