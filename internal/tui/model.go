// Package tui is the full-screen terminal front end of the game, built on
// Bubble Tea.
package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/abhisek/quickmaths/internal/problemgen"
	"github.com/abhisek/quickmaths/internal/session"
)

const (
	tickInterval = 100 * time.Millisecond
	inputLimit   = 24
)

// Options are the dependencies of a game.
type Options struct {
	Generator *problemgen.Generator
	Session   *session.Session
	Units     problemgen.UnitConfig
	Logger    hclog.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Model is the root Bubble Tea model of a game.
type Model struct {
	gen   *problemgen.Generator
	sess  *session.Session
	units problemgen.UnitConfig
	log   hclog.Logger
	clock func() time.Time

	input   textinput.Model
	phase   phase
	current *problemgen.Problem
	askedAt time.Time
	now     time.Time
	last    *session.Result
	err     error

	// ticks identifies the live timer loop; stale ticks are dropped.
	ticks int

	width  int
	height int
}

// New creates the model and draws the first problem.
func New(opts Options) (Model, error) {
	if opts.Generator == nil || opts.Session == nil {
		return Model{}, errors.New("tui: generator and session are required")
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "your answer"
	ti.CharLimit = inputLimit
	ti.Focus()

	m := Model{
		gen:   opts.Generator,
		sess:  opts.Session,
		units: opts.Units,
		log:   opts.Logger.Named("tui"),
		clock: opts.Clock,
		input: ti,
	}
	if err := m.nextProblem(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), tickCmd(m.ticks))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if msg.gen != m.ticks || m.phase == phaseSummary {
			return m, nil
		}
		m.now = msg.at
		return m, tickCmd(m.ticks)

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.phase == phaseQuestion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.phase {
	case phaseQuestion:
		switch key {
		case "enter":
			return m.submit(m.input.Value())
		case "tab":
			return m.submit("")
		case "esc":
			m.finish()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseFeedback:
		if key == "esc" {
			m.finish()
			return m, nil
		}
		if m.sess.Done() {
			m.finish()
			return m, nil
		}
		if err := m.nextProblem(); err != nil {
			m.err = err
			m.finish()
		}
		return m, nil

	case phaseSummary:
		switch key {
		case "r":
			m.sess.Reset()
			m.log.Debug("session restarted", "session", m.sess.ID)
			if err := m.nextProblem(); err != nil {
				m.err = err
				return m, nil
			}
			m.ticks++
			return m, tickCmd(m.ticks)
		case "q", "esc", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

// submit grades raw against the current problem and shows the feedback.
func (m Model) submit(raw string) (tea.Model, tea.Cmd) {
	elapsed := m.clock().Sub(m.askedAt)
	r := session.Grade(m.current, raw, elapsed)
	if err := m.sess.Record(r); err != nil {
		m.err = err
		m.finish()
		return m, nil
	}
	m.last = &r
	m.phase = phaseFeedback
	m.log.Debug("answer graded",
		"session", m.sess.ID,
		"round", m.sess.Round,
		"answer", r.Answer,
		"abs_error", r.ErrorDisplay(),
		"score", r.Score,
		"time_s", r.TimeS)
	return m, nil
}

// nextProblem draws the problem for the upcoming round.
func (m *Model) nextProblem() error {
	p, err := m.gen.Generate(m.sess.Mode, m.sess.Level, m.units)
	if err != nil {
		return fmt.Errorf("generate problem: %w", err)
	}
	m.current = p
	m.last = nil
	m.phase = phaseQuestion
	m.input.Reset()
	m.askedAt = m.clock()
	m.now = m.askedAt
	m.log.Debug("problem generated",
		"session", m.sess.ID,
		"round", m.sess.CurrentRound(),
		"mode", p.Mode,
		"prompt", p.Prompt,
		"difficulty", p.Difficulty,
		"tolerance", p.Tolerance)
	return nil
}

func (m *Model) finish() {
	m.phase = phaseSummary
	m.log.Info("game over",
		"session", m.sess.ID,
		"rounds", m.sess.Round,
		"total", m.sess.TotalScore,
		"max", m.sess.MaxScore())
}

// Session returns the game state, for reporting after the program exits.
func (m Model) Session() *session.Session {
	return m.sess
}

// Err returns the error that ended the game early, if any.
func (m Model) Err() error {
	return m.err
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

// Run starts the Bubble Tea program and returns the finished session.
func Run(opts Options) (*session.Session, error) {
	m, err := New(opts)
	if err != nil {
		return nil, err
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return nil, err
	}
	fm := final.(Model)
	return fm.Session(), fm.Err()
}
