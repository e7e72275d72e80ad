package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/breakline/arkanoid/internal/audio"
	"github.com/breakline/arkanoid/internal/core"
	"github.com/breakline/arkanoid/internal/engine"
	"github.com/breakline/arkanoid/internal/storage"
)

// Model is the Bubble Tea model driving a game session. It owns the frame
// loop: input frames go in on key and mouse messages, the simulation advances
// on ticks by the measured wall-clock delta, and events fan out to sound and
// particles.
type Model struct {
	session    *engine.Session
	screen     *core.Screen
	player     *audio.Player
	particles  *ParticleSystem
	keyMapper  *KeyMapper
	scores     ScoreSource
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	highScore  int
	topScores  []int
	lastTick   time.Time
	quitting   bool
}

// ScoreSource feeds the menu's high-score readout and leaderboard.
// *storage.Store satisfies it.
type ScoreSource interface {
	HighScore() (int, error)
	TopScores(limit int) ([]storage.ScoreEntry, error)
}

// NewModel creates the model. player may be nil to run without sound;
// scores may be nil to run without a leaderboard.
func NewModel(session *engine.Session, player *audio.Player, scores ScoreSource, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		player:     player,
		particles:  NewParticleSystem(cfg.Seed),
		keyMapper:  NewKeyMapper(),
		scores:     scores,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.refreshScores()
	return m
}

// refreshScores re-reads the leaderboard, called at startup and after every
// finished session so the menu stays current.
func (m *Model) refreshScores() {
	if m.scores == nil {
		return
	}
	if high, err := m.scores.HighScore(); err == nil {
		m.highScore = high
	}
	if entries, err := m.scores.TopScores(menuLeaderboardSize); err == nil {
		m.topScores = m.topScores[:0]
		for _, e := range entries {
			m.topScores = append(m.topScores, e.Score)
		}
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers key input into the frame consumed on the next tick. Mute
// is a presentation concern, handled here rather than in the engine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	if action == core.ActionMute {
		if m.player != nil {
			m.player.ToggleMute()
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse converts cell coordinates to field coordinates for the engine.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	vp := m.viewport()

	switch msg.Action {
	case tea.MouseActionMotion:
		x, _ := vp.toField(msg.X, msg.Y)
		m.inputFrame.SetPointer(x)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			x, y := vp.toField(msg.X, msg.Y)
			m.inputFrame.SetClick(x, y)
		}
	}

	return m, nil
}

// handleTick advances the simulation by the measured wall-clock delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	if quit := m.session.HandleInput(m.inputFrame); quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Clear()

	events := m.session.Step(dt)
	if m.player != nil {
		m.player.HandleEvents(events)
	}
	m.particles.HandleEvents(events)
	m.particles.Update(dt)

	for _, e := range events {
		if e.Kind == engine.EventSessionWon || e.Kind == engine.EventSessionLost {
			if e.Score > m.highScore {
				m.highScore = e.Score
			}
			m.refreshScores()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) viewport() viewport {
	field := m.session.Config().Field
	return newViewport(field.Width, field.Height, m.screen.Width(), m.screen.Height())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	vp := m.viewport()
	muted := m.player != nil && m.player.Muted()

	m.screen.Clear()
	if m.session.Phase() == engine.PhaseMenu {
		m.particles.DrawStarfield(m.screen)
	}
	drawSession(m.screen, m.session, vp, m.highScore, m.topScores, muted)
	if m.session.Phase() != engine.PhaseMenu {
		m.particles.Draw(m.screen, vp)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(session *engine.Session, player *audio.Player, scores ScoreSource, cfg core.RuntimeConfig) error {
	model := NewModel(session, player, scores, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		// All-motion mode so the paddle follows the pointer without a
		// button held.
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
