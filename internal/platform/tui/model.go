package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/xtarda-rescue/internal/core"
	"github.com/vovakirdan/xtarda-rescue/internal/games/lander"
	"github.com/vovakirdan/xtarda-rescue/internal/registry"
	"github.com/vovakirdan/xtarda-rescue/internal/storage"
)

// SoundPlayer receives the sound cues of every tick.
type SoundPlayer interface {
	Play(sounds []lander.Sound)
}

// Spectator receives periodic world snapshots for remote viewers.
type Spectator interface {
	Publish(pilot string, snap lander.Snapshot)
}

// RunStore persists finished runs.
type RunStore interface {
	SaveRun(run storage.Run) (int64, error)
}

// Options are the optional collaborators of a Model.
// Any of them may be nil.
type Options struct {
	Player string
	Store  RunStore
	Sound  SoundPlayer
	Spec   Spectator
	Logger *log.Logger
}

// soundSource, progressSource and snapshotSource are implemented by the
// lander game.
type soundSource interface {
	DrainSounds() []lander.Sound
}

type snapshotSource interface {
	Snapshot() lander.Snapshot
}

type progressSource interface {
	Progress() lander.Progress
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	steer      steerHold
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      int
	runSaved   bool // Whether the current game over has been recorded
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		steer:      newSteerHold(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight())

	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.opts.Logger.Info("run started", "player", m.opts.Player, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight())
		return m, nil
	}

	action, dir := m.keys.MapKey(msg, m.gameState.Paused)
	if dir != steerNone {
		m.steer.press(dir, &m.inputFrame)
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the world and rescales the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playfieldHeight())
	return m, nil
}

// handleTick advances the simulation one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.steer.tick(&m.inputFrame)

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// Cues are cleared at the start of the next step
	if src, ok := m.game.(soundSource); ok {
		sounds := src.DrainSounds()
		if m.opts.Sound != nil && len(sounds) > 0 {
			m.opts.Sound.Play(sounds)
		}
	}

	m.ticks++
	if m.opts.Spec != nil && m.ticks%spectateEvery(m.config.TickRate) == 0 {
		if src, ok := m.game.(snapshotSource); ok {
			m.opts.Spec.Publish(m.opts.Player, src.Snapshot())
		}
	}

	if m.gameState.Level != prev.Level && !m.gameState.GameOver {
		m.opts.Logger.Debug("level changed", "level", m.gameState.Level, "rescued", m.gameState.Score)
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	if !m.gameState.GameOver {
		m.runSaved = false
	}

	if m.game.Done() {
		m.opts.Logger.Info("player quit", "player", m.opts.Player, "level", m.gameState.Level)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Runs without a rescue are not kept.
func (m *Model) saveRun() {
	run := storage.Run{
		Player:  m.opts.Player,
		Level:   m.gameState.Level,
		Rescued: m.gameState.Score,
	}
	if src, ok := m.game.(progressSource); ok {
		run.Precision = src.Progress().PrecisionDocks
	}
	m.opts.Logger.Info("game over", "player", run.Player, "level", run.Level, "rescued", run.Rescued)

	if m.opts.Store == nil || run.Rescued == 0 {
		return
	}
	id, err := m.opts.Store.SaveRun(run)
	if err != nil {
		m.opts.Logger.Error("could not save run", "error", err)
		return
	}
	m.opts.Logger.Debug("run saved", "id", id)
}

// spectateEvery is the tick interval between published snapshots (~10 Hz).
func spectateEvery(tickRate int) int {
	return max(tickRate/10, 1)
}

// playfieldHeight is the screen height left after the help footer.
func (m Model) playfieldHeight() int {
	return max(m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)), 1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
