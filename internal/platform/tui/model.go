package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      *HeldKeys
	logger    *log.Logger
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// hold is how long a movement key press counts as held.
func NewModel(game registry.Game, cfg core.RuntimeConfig, hold time.Duration, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		held:   NewHeldKeys(hold),
		logger: logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH-m.helpHeight())
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses; they take effect on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "round", m.gameState.Round)
		return m, tea.Quit
	}

	m.held.Press(action, time.Now())
	return m, nil
}

// handleTick runs one simulation tick with the input held at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame(now))

	if result.State.GameOver && !m.gameState.GameOver {
		m.held.Release()
		m.logger.Info("game over", "game", m.game.ID(), "won", result.State.Won, "rounds", result.State.Round)
	}
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// fitScreen sizes the game screen to leave room for the help view.
func (m *Model) fitScreen() {
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-m.helpHeight())
}

func (m Model) helpHeight() int {
	return lipgloss.Height(m.help.View(m.keys))
}

// View renders the game and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, hold time.Duration, logger *log.Logger) error {
	model := NewModel(game, cfg, hold, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
