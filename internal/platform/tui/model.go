package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spider-dash/internal/config"
	"github.com/vovakirdan/spider-dash/internal/core"
	"github.com/vovakirdan/spider-dash/internal/games/spiderdash"
	"github.com/vovakirdan/spider-dash/internal/storage"
)

// LocalPlayer is the name recorded for runs played outside SSH.
const LocalPlayer = "local"

// maxTickDt caps a single step after a stalled session.
const maxTickDt = 0.1

// Model is the Bubble Tea model for one Spider Dash session.
type Model struct {
	game      *spiderdash.Game
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	board     leaderboard
	recorder  RunRecorder
	player    string
	rt        core.RuntimeConfig
	input     core.InputFrame
	state     core.GameState
	lastTick  time.Time
	showBoard bool
	quitting  bool
}

// NewModel creates a session for a terminal of the given size.
// recorder may be nil, in which case runs are not recorded.
func NewModel(cfg config.SpiderDashConfig, recorder RunRecorder, player string, width, height int) Model {
	game := spiderdash.New(cfg)
	game.Reset(spiderdash.DefaultGeometry())

	if player == "" {
		player = LocalPlayer
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  max(0, height-1),
		TickRate: cfg.Window.TickRate,
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:     DefaultKeyMap(cfg.Controls.Jump),
		help:     help.New(),
		board:    newLeaderboard(height),
		recorder: recorder,
		player:   player,
		rt:       rt,
		input:    core.NewInputFrame(),
		state:    game.State(),
	}
	m.help.Width = width
	m.board.load(recorder)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.rt.ScreenW, m.rt.ScreenH = msg.Width, max(0, msg.Height-1)
		m.screen.Resize(m.rt.ScreenW, m.rt.ScreenH)
		m.board.setHeight(msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Leaders) && m.recorder != nil {
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.board.load(m.recorder)
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
	case core.ActionJump:
		m.input.Set(core.ActionJump)
	}
	return m, nil
}

// handleTick steps the game by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.rt.FrameTime()
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxTickDt)
	}
	m.lastTick = now

	res := m.game.Step(m.input, dt)
	m.state = res.State
	m.input.Clear()

	if res.Transition.Changed() && res.Transition.To == core.PhaseGameOver {
		m.record(res.State)
	}

	return m, tickCmd(m.rt.TickRate)
}

// record stores a finished run and refreshes the leaderboard.
func (m *Model) record(st core.GameState) {
	if m.recorder == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.recorder.RecordRun(storage.Run{
		Player:  m.player,
		Score:   st.Score,
		Outcome: st.Outcome.String(),
		Frames:  st.Frames,
	})
	m.board.load(m.recorder)
}

// saveScreenshot writes the current frame as plain text under
// ~/.spiderdash/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".spiderdash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the game, or the leaderboard when toggled, above the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := ""
	if m.showBoard {
		body = m.board.View()
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	footer := m.help.View(m.keys)
	if m.recorder != nil {
		footer = fmt.Sprintf("ledger best %d • %s", m.board.best, footer)
	}
	return body + "\n" + helpStyle.Render(footer)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts a local terminal session and blocks until the player quits.
func Run(cfg config.SpiderDashConfig, recorder RunRecorder, width, height int) error {
	model := NewModel(cfg, recorder, LocalPlayer, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
