package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stardodge/stardodge/internal/config"
	"github.com/stardodge/stardodge/internal/core"
	"github.com/stardodge/stardodge/internal/game"
	"github.com/stardodge/stardodge/internal/storage"
)

// keyboardNudge is how far a single arrow key press moves the steering
// target, in surface units.
const keyboardNudge = 24.0

var (
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	hudDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overlayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// GameModel is the Bubble Tea model driving a single play session.
type GameModel struct {
	session    *game.Session
	canvas     *core.Canvas
	store      *storage.Store
	config     core.RuntimeConfig
	highScore  int
	scoreSaved bool // Whether score has been saved for the current run
	tooSmall   bool
	quitting   bool
}

// NewGameModel creates a model for the given session configuration.
// store may be nil, in which case scores are not persisted.
func NewGameModel(gameCfg config.GameConfig, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	surfaceW, surfaceH := core.FitSurface(cfg.Cols, cfg.Rows)

	session := game.NewSession(gameCfg, cfg.Seed)
	session.Resize(surfaceW, surfaceH)

	m := GameModel{
		session:  session,
		canvas:   core.NewCanvas(cfg.Cols, cfg.Rows, surfaceW, surfaceH),
		store:    store,
		config:   cfg,
		tooSmall: core.SurfaceTooSmall(surfaceW, surfaceH),
	}
	m.refreshHighScore()
	return m
}

func (m *GameModel) refreshHighScore() {
	if m.store == nil {
		return
	}
	if hs, err := m.store.HighScore(); err == nil {
		m.highScore = hs
	}
}

// Init waits for the player to start; the tick loop is issued on start.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+s":
		m.saveScreenshot()
		return m, nil

	case "enter", " ":
		if m.tooSmall {
			return m, nil
		}
		if m.session.State() != game.StateRunning {
			m.session.Start()
			m.scoreSaved = false
			return m, tickCmd(m.config.TickRate)
		}
		return m, nil

	case "r":
		if m.session.State() == game.StateEnded {
			m.session.Restart()
			m.scoreSaved = false
			return m, tickCmd(m.config.TickRate)
		}
		return m, nil

	case "p":
		m.session.TogglePause()
		return m, nil

	case "esc":
		// Back to the idle screen; the tick loop stops on its own.
		m.session.Close()
		return m, nil
	}

	// Keyboard steering nudges the target; the ship eases toward it.
	if m.session.State() == game.StateRunning {
		var dx, dy float64
		switch msg.String() {
		case "left", "a", "h":
			dx = -keyboardNudge
		case "right", "d", "l":
			dx = keyboardNudge
		case "up", "w", "k":
			dy = -keyboardNudge
		case "down", "s", "j":
			dy = keyboardNudge
		}
		if dx != 0 || dy != 0 {
			t := m.session.Target()
			m.session.SetTarget(t.X+dx, t.Y+dy)
		}
	}

	return m, nil
}

// handleMouse maps terminal cell coordinates to the steering target.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Cell center in surface units.
	x := (float64(msg.X-m.canvas.OffsetCol()) + 0.5) * core.UnitsPerCol
	y := (float64(msg.Y-m.canvas.OffsetRow()) + 0.5) * core.UnitsPerRow
	m.session.SetTarget(x, y)
	return m, nil
}

// handleResize refits the playable surface to the new terminal size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.Cols = msg.Width
	m.config.Rows = msg.Height

	surfaceW, surfaceH := core.FitSurface(msg.Width, msg.Height)
	m.canvas.Resize(msg.Width, msg.Height, surfaceW, surfaceH)
	m.session.Resize(surfaceW, surfaceH)
	m.tooSmall = core.SurfaceTooSmall(surfaceW, surfaceH)

	return m, nil
}

// handleTick advances the simulation one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step()

	// Save the score once when the run ends.
	if m.session.State() == game.StateEnded && !m.scoreSaved {
		m.scoreSaved = true
		if m.store != nil && m.session.DisplayScore() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.session.DisplayScore(), m.session.Score())
			m.refreshHighScore()
		}
	}

	// Reschedule only while the simulation is live. A run that ended
	// or was closed leaves no pending tick behind.
	if m.session.State() == game.StateRunning {
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// saveScreenshot writes the current frame to a text file.
func (m *GameModel) saveScreenshot() {
	m.session.Render(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".stardodge", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("stardodge_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.canvas.String()), 0o600)
}

// View renders the current frame and HUD.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		return overlayStyle.Render("Terminal too small") + "\n" +
			hintStyle.Render("Resize the window to at least 27x16 and try again.\nPress q to quit.")
	}

	m.session.Render(m.canvas)

	var sb strings.Builder
	sb.WriteString(m.hud())
	sb.WriteRune('\n')
	sb.WriteString(RenderCanvas(m.canvas))

	if overlay := m.overlay(); overlay != "" {
		sb.WriteRune('\n')
		sb.WriteString(overlay)
	}
	return sb.String()
}

func (m GameModel) hud() string {
	indent := strings.Repeat(" ", m.canvas.OffsetCol())
	score := hudStyle.Render(fmt.Sprintf("Score: %d", m.session.DisplayScore()))
	best := hudDimStyle.Render(fmt.Sprintf("Best: %d", m.highScore))
	return indent + score + "  " + best
}

func (m GameModel) overlay() string {
	indent := strings.Repeat(" ", m.canvas.OffsetCol())
	switch {
	case m.session.State() == game.StateIdle:
		return indent + overlayStyle.Render("STARDODGE") + "\n" +
			indent + hintStyle.Render("enter: start | mouse/arrows: steer | q: quit")
	case m.session.State() == game.StateEnded:
		return indent + overlayStyle.Render(fmt.Sprintf("GAME OVER - score %d (best %d)", m.session.DisplayScore(), m.highScore)) + "\n" +
			indent + hintStyle.Render("r: play again | q: quit")
	case m.session.Paused():
		return indent + overlayStyle.Render("PAUSED") + "\n" +
			indent + hintStyle.Render("p: resume | esc: quit to title")
	}
	return ""
}

// Run starts the Bubble Tea program for a local play session.
func Run(gameCfg config.GameConfig, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(gameCfg, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer steering needs motion events
	)

	_, err := p.Run()
	return err
}
