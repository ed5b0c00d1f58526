package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/logging"
	"github.com/vovakirdan/tui-minesweeper/internal/random"
	"github.com/vovakirdan/tui-minesweeper/internal/telemetry"
)

// Options configures a Model.
type Options struct {
	Params  minesweeper.Params
	Config  config.Config
	Runtime core.RuntimeConfig // Screen size and seed; Seed 0 seeds from the clock
	Logger  *log.Logger        // Defaults to a discarding logger
	Tracer  trace.Tracer       // Defaults to a no-op tracer
	Context context.Context    // Parent for game spans; defaults to Background
}

// game is one session plus the identifiers used in logs and spans.
type game struct {
	id      string
	seed    int64
	session *minesweeper.Session
	ctx     context.Context
	span    trace.Span
	ended   bool
}

// Model is the Bubble Tea model for a minesweeper game.
// Each key message is applied to the session and rendered before the
// next one is read.
type Model struct {
	params   minesweeper.Params
	keys     KeyMap
	help     help.Model
	view     BoardView
	theme    Theme
	screen   *core.Screen
	logger   *log.Logger
	tracer   trace.Tracer
	ctx      context.Context
	seeds    *random.Rand // Draws the seed for each restart
	game     *game
	quitting bool
}

// NewModel creates a model and starts the first game.
func NewModel(opts Options) (Model, error) {
	if err := opts.Params.Validate(); err != nil {
		return Model{}, err
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.NoopTracer()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	// Use time-based seed if not specified
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = random.TimeSeed()
	}

	theme := NewTheme(opts.Config)
	m := Model{
		params: opts.Params,
		keys:   NewKeyMap(opts.Config.Keys),
		help:   newHelp(),
		view:   NewBoardView(theme),
		theme:  theme,
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		logger: opts.Logger,
		tracer: opts.Tracer,
		ctx:    opts.Context,
		seeds:  random.New(seed),
	}
	m.help.Width = opts.Runtime.ScreenW

	g, err := m.newGame(seed)
	if err != nil {
		return Model{}, err
	}
	m.game = g
	return m, nil
}

// newGame starts a session with the given seed and opens its span.
func (m Model) newGame(seed int64) (*game, error) {
	session, err := minesweeper.NewSession(m.params, random.New(seed))
	if err != nil {
		return nil, fmt.Errorf("tui: cannot start session: %w", err)
	}

	id := uuid.NewString()
	ctx, span := m.tracer.Start(m.ctx, "minesweeper.game",
		trace.WithAttributes(
			attribute.String("session.id", id),
			attribute.Int64("seed", seed),
			attribute.Int("board.width", m.params.Width),
			attribute.Int("board.height", m.params.Height),
			attribute.Int("board.mines", m.params.MineCount),
		),
	)

	m.logger.Info("session started",
		"session", id,
		"seed", seed,
		"width", m.params.Width,
		"height", m.params.Height,
		"mines", m.params.MineCount,
	)

	return &game{id: id, seed: seed, session: session, ctx: ctx, span: span}, nil
}

// endGame closes the game span with the final state.
func (m Model) endGame(reason string) {
	if m.game.ended {
		return
	}
	m.game.ended = true

	s := m.game.session
	m.game.span.SetAttributes(
		attribute.String("state", s.State().String()),
		attribute.Int("moves", s.Moves()),
		attribute.String("end.reason", reason),
	)
	if s.GameOver() {
		m.game.span.SetStatus(codes.Error, "mine hit")
	}
	m.game.span.End()
}

// Init has nothing to start: the game only advances on key presses.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.game.session.Quit()
		m.logger.Info("quit", "session", m.game.id, "state", m.game.session.State(), "moves", m.game.session.Moves())
		m.endGame("quit")
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionRestart:
		if !m.game.session.Finished() {
			return m, nil
		}
		return m.restart()
	}

	// The board is hidden behind the full help view.
	if m.help.ShowAll {
		return m, nil
	}

	m.apply(action)
	return m, nil
}

// apply runs one game action against the session, tracing everything
// except cursor movement.
func (m Model) apply(action core.Action) {
	s := m.game.session
	wasReady := s.Initialized()
	before := s.State()

	if action.IsMove() {
		s.Apply(action)
		return
	}

	x, y := s.Cursor()
	_, span := m.tracer.Start(m.game.ctx, "minesweeper."+action.String(),
		trace.WithAttributes(
			attribute.String("session.id", m.game.id),
			attribute.Int("cursor.x", x),
			attribute.Int("cursor.y", y),
		),
	)
	accepted := s.Apply(action)
	span.SetAttributes(
		attribute.Bool("accepted", accepted),
		attribute.Int("flags.left", s.FlagBudget()),
		attribute.String("state", s.State().String()),
	)
	span.End()

	if !wasReady && s.Initialized() {
		m.logger.Info("board initialized", "session", m.game.id, "x", x, "y", y)
	}
	if s.State() != before {
		m.logger.Info("game finished",
			"session", m.game.id,
			"state", s.State(),
			"moves", s.Moves(),
			"uncovered", s.Board().UncoveredCount(),
		)
		m.endGame(s.State().String())
	}
}

// restart replaces a finished game with a fresh one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	seed := int64(m.seeds.Uniform(1, math.MaxInt32))
	g, err := m.newGame(seed)
	if err != nil {
		m.logger.Error("restart failed", "error", err)
		return m, nil
	}

	m.logger.Info("restart", "previous", m.game.id, "session", g.id)
	m.game = g
	m.help.ShowAll = false
	return m, nil
}

// handleResize processes window resize events.
// The board keeps its size; only the screen buffer follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// frame builds the status and help text for the current state.
func (m Model) frame() Frame {
	s := m.game.session
	restartKey := m.keys.Restart.Help().Key
	quitKey := m.keys.Quit.Help().Key

	var f Frame
	switch s.State() {
	case minesweeper.StateLost:
		f.Status = fmt.Sprintf("Boom! You hit a mine. %s: new game  %s: quit", restartKey, quitKey)
	case minesweeper.StateWon:
		f.Status = fmt.Sprintf("Board cleared in %d moves! %s: new game  %s: quit", s.Moves(), restartKey, quitKey)
	default:
		if !s.Initialized() {
			f.Status = "Sweep any cell to start"
		}
	}

	if m.help.ShowAll {
		f.Overlay = append([]string{"Keys", ""}, strings.Split(m.help.View(m.keys), "\n")...)
		return f
	}
	if m.theme.HelpBar {
		f.HelpBar = m.help.View(m.keys)
	}
	return f
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.Draw(m.screen, m.game.session, m.frame())
	return RenderScreen(m.screen)
}

// Session returns the current session.
func (m Model) Session() *minesweeper.Session {
	return m.game.session
}

// SessionID returns the identifier used in logs and spans.
func (m Model) SessionID() string {
	return m.game.id
}

// Seed returns the seed of the current game.
func (m Model) Seed() int64 {
	return m.game.seed
}

// Screen returns the screen buffer the model draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Quitting reports whether the program is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
