package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyrush/internal/config"
	"github.com/vovakirdan/skyrush/internal/core"
	"github.com/vovakirdan/skyrush/internal/game"
	"github.com/vovakirdan/skyrush/internal/sim"
	"github.com/vovakirdan/skyrush/internal/storage"
)

// RuntimeOptions holds the per-session runtime parameters.
type RuntimeOptions struct {
	ScreenW  int
	ScreenH  int
	TickRate int
	Seed     int64
}

// RunKeyMap defines the key bindings for a run.
type RunKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultRunKeyMap returns default key bindings.
func DefaultRunKeyMap() RunKeyMap {
	return RunKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "move right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunModel is the Bubble Tea model for playing a run.
type RunModel struct {
	cfg     config.RunnerConfig
	runtime RuntimeOptions

	driver *sim.Driver
	state  *game.Store
	player *game.Player
	db     *storage.Store
	screen *core.Screen

	keys RunKeyMap
	help help.Model

	entities []sim.EntityView
	seed     int64
	now      float64 // Host clock in seconds, advanced per tick
	paused   bool
	runSaved bool
	quitting bool
}

// NewRunModel creates a new Bubble Tea model for a run.
// db may be nil; runs are then not persisted.
func NewRunModel(cfg config.RunnerConfig, db *storage.Store, opts RuntimeOptions) RunModel {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	h := help.New()
	h.ShowAll = false

	return RunModel{
		cfg:     cfg,
		runtime: opts,
		driver:  sim.New(cfg, opts.Seed),
		state:   game.NewStore(cfg),
		player:  game.NewPlayer(cfg.Player, cfg.World),
		db:      db,
		// The bottom terminal row is reserved for the help bar.
		screen: core.NewScreen(opts.ScreenW, opts.ScreenH-1),
		keys:   DefaultRunKeyMap(),
		help:   h,
		seed:   opts.Seed,
	}
}

// Init starts the simulation and the tick loop.
func (m RunModel) Init() tea.Cmd {
	m.driver.Start()
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// gameOver reports whether the current run has ended.
func (m RunModel) gameOver() bool {
	return m.driver.State() == sim.StateTerminal
}

// handleKey processes keyboard input.
func (m RunModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.gameOver() {
			m.restart()
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if !m.gameOver() {
			m.paused = !m.paused
		}
		return m, nil
	}

	// The shop freezes the run until dismissed.
	if m.state.ShopOpen {
		if key.Matches(msg, m.keys.Jump) {
			m.state.ShopOpen = false
		}
		return m, nil
	}

	if m.paused || m.gameOver() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.player.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.player.MoveRight()
	case key.Matches(msg, m.keys.Jump):
		m.player.Jump()
	}
	return m, nil
}

// restart begins a fresh run with a new seed.
func (m *RunModel) restart() {
	m.seed = time.Now().UnixNano()
	m.driver.Restart(m.seed)
	m.state.Reset()
	m.player.Reset()
	m.entities = nil
	m.now = 0
	m.paused = false
	m.runSaved = false
}

// handleTick advances the simulation by one fixed step.
func (m RunModel) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.runtime.TickRate)
	if m.paused || m.state.ShopOpen || m.gameOver() {
		return m, next
	}

	dt := 1.0 / float64(m.runtime.TickRate)
	m.now += dt
	m.player.Update(dt)

	frame := m.state.Frame(m.player, m.now, sim.StatusRunning)
	result := m.driver.Tick(dt, frame)
	m.entities = result.Entities

	for _, ev := range result.Events {
		m.state.Apply(ev, m.now)
		if _, ok := ev.(sim.JumpPadTriggeredEvent); ok {
			m.player.Launch()
		}
	}

	// The simulation does not own lives; the host ends the run.
	if m.state.LivesDepleted() && !m.gameOver() {
		for _, ev := range m.driver.Halt() {
			m.state.Apply(ev, m.now)
		}
	}

	if m.gameOver() && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, next
}

// saveRun persists the finished run. Best-effort; the UI continues
// regardless.
func (m *RunModel) saveRun() {
	if m.db == nil {
		return
	}
	letters := 0
	for _, got := range m.state.Collected {
		if got {
			letters++
		}
	}
	//nolint:errcheck // Best-effort save
	m.db.SaveRun(storage.RunEntry{
		Seed:     m.seed,
		Score:    m.state.Score,
		Distance: m.state.Distance,
		Level:    m.state.Level,
		Gems:     m.state.Gems,
		Letters:  letters,
		Won:      m.state.Won,
	})
}

// View renders the corridor, HUD and overlays.
func (m RunModel) View() string {
	if m.quitting {
		return ""
	}

	s := m.screen
	s.Clear()

	distance := m.driver.Distance()
	drawHUD(s, m.state.Score, m.state.Gems, m.state.Lives, m.state.Level,
		distance, m.state.Word(), m.state.Collected)
	m.drawPowerUps(s)

	geo := newCorridorGeometry(s, 2, m.cfg.World.LaneCount, m.cfg.World.LaneWidth, m.cfg.World.SpawnAhead)
	geo.drawLanes(s, m.cfg.World.LaneCount, m.cfg.World.LaneWidth)
	m.drawEntities(s, geo)
	m.drawPlayer(s, geo)

	switch {
	case m.state.Won && m.gameOver():
		drawCenteredText(s, s.Height()/2, " YOU WIN! ", core.ColorGreen)
		drawCenteredText(s, s.Height()/2+1, " R to play again ", core.ColorGray)
	case m.gameOver():
		drawCenteredText(s, s.Height()/2, " GAME OVER ", core.ColorRed)
		drawCenteredText(s, s.Height()/2+1, " R to restart ", core.ColorGray)
	case m.state.ShopOpen:
		drawCenteredText(s, s.Height()/2, fmt.Sprintf(" SHOP - LEVEL %d ", m.state.Level), core.ColorMagenta)
		drawCenteredText(s, s.Height()/2+1, " space to continue ", core.ColorGray)
	case m.paused:
		drawCenteredText(s, s.Height()/2, " PAUSED ", core.ColorYellow)
	}

	return RenderScreen(s) + "\n" + m.help.View(m.keys)
}

// drawPowerUps shows active power-up tags on the right of the HUD.
func (m RunModel) drawPowerUps(s *core.Screen) {
	tags := ""
	if m.state.MagnetUntil > m.now {
		tags += " [MAGNET]"
	}
	if m.state.ShieldUntil > m.now {
		tags += " [SHIELD]"
	}
	if m.state.BoostUntil > m.now {
		tags += " [BOOST]"
	}
	if tags == "" {
		return
	}
	s.DrawText(s.Width()-len(tags)-1, 0, tags, core.ColorGreen)
}

// drawEntities projects the sim snapshot into the corridor view.
func (m RunModel) drawEntities(s *core.Screen, geo corridorGeometry) {
	word := m.state.Word()
	for _, v := range m.entities {
		if v.Kind == sim.KindLaserGate {
			m.drawLaserGate(s, geo, v)
			continue
		}
		col, row, ok := geo.cell(v.Pos.X, v.Pos.Z)
		if !ok {
			continue
		}
		glyph, c := entityGlyph(v, word)
		s.Set(col, row, glyph, c)
	}
}

// drawLaserGate draws the beam across the gate's full width.
func (m RunModel) drawLaserGate(s *core.Screen, geo corridorGeometry, v sim.EntityView) {
	_, row, ok := geo.cell(v.Pos.X, v.Pos.Z)
	if !ok {
		return
	}
	half := v.GateWidth / 2
	left := geo.centerCol + int((v.Pos.X-half)*geo.colsPerUnit)
	right := geo.centerCol + int((v.Pos.X+half)*geo.colsPerUnit)
	for col := left; col <= right; col++ {
		s.Set(col, row, '=', core.ColorRed)
	}
}

// drawPlayer renders the player capsule; jumping lifts it off its row.
func (m RunModel) drawPlayer(s *core.Screen, geo corridorGeometry) {
	col, row, _ := geo.cell(m.player.Pos.X, 0)
	if m.player.Pos.Y > 1.0 {
		row--
	}
	glyph := 'A'
	c := core.ColorWhite
	if m.state.ShieldUntil > m.now {
		c = core.ColorCyan
	}
	s.Set(col, row, glyph, c)
}

// RunProgram starts the Bubble Tea program for a local run.
func RunProgram(cfg config.RunnerConfig, db *storage.Store, opts RuntimeOptions) error {
	model := NewRunModel(cfg, db, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
