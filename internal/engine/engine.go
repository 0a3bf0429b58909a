// Package engine ties the viewport, the jump prompt and the moon classifier
// together. It turns logical commands into frames and is driven from a single
// goroutine.
package engine

import (
	"io"
	"log/slog"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
	"github.com/twiced-technology-gmbh/nhmoon/internal/prompt"
	"github.com/twiced-technology-gmbh/nhmoon/internal/viewport"
)

// Engine owns the viewport and prompt state.
type Engine struct {
	view       *viewport.Viewport
	prompt     prompt.Prompt
	classifier moon.Classifier
	help       bool
	quit       bool
	err        error
	log        *slog.Logger
}

// New creates an Engine centered on center. A nil classifier uses the default
// periodic model.
func New(center date.Date, rows int, c moon.Classifier) *Engine {
	if c == nil {
		c = moon.DefaultPeriodic()
	}
	return &Engine{
		view:       viewport.New(center, rows),
		classifier: c,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger used for command tracing.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.log = l
	}
}

// Resize changes the number of visible rows.
func (e *Engine) Resize(rows int) {
	e.view.Resize(rows)
}

// Rows returns the number of visible rows.
func (e *Engine) Rows() int { return e.view.Rows() }

// SetClassifier swaps the moon classifier, for example after a config reload.
func (e *Engine) SetClassifier(c moon.Classifier) {
	if c != nil {
		e.classifier = c
	}
}

// Center returns the centered date.
func (e *Engine) Center() date.Date { return e.view.Center() }

// Handle applies one command and returns the resulting frame. today is the
// caller's current date, used by JumpToday and to mark today's row.
func (e *Engine) Handle(cmd Command, today date.Date) Frame {
	e.err = nil
	effective := e.dispatch(cmd, today)
	view := e.view.State()
	e.log.Debug("command",
		"cmd", cmd.String(),
		"effective", effective,
		"center", view.Center.String(),
		"rows", view.Rows,
		"prompt", e.prompt.State().Mode.String(),
	)
	f := e.Frame(today)
	f.Bell = !effective
	return f
}

// Frame returns the current frame without changing any state.
func (e *Engine) Frame(today date.Date) Frame {
	dates := e.view.VisibleDates()
	centerRow := e.view.CenterRow()
	rows := make([]Row, len(dates))
	for i, d := range dates {
		rows[i] = Row{
			Date:   d,
			Phase:  e.classifier.PhaseOf(d.Ordinal()),
			Today:  d == today,
			Center: i == centerRow,
		}
	}
	return Frame{
		Rows:   rows,
		Prompt: e.prompt.State(),
		Help:   e.help,
		Quit:   e.quit,
		Err:    e.err,
	}
}

func (e *Engine) dispatch(cmd Command, today date.Date) bool {
	if e.help {
		e.help = false
		return true
	}
	if e.prompt.IsOpen() {
		return e.dispatchPrompt(cmd)
	}
	if cmd.IsPromptCommand() {
		return false
	}
	switch cmd {
	case ScrollWeekUp:
		return e.view.ScrollWeek(viewport.Up)
	case ScrollWeekDown:
		return e.view.ScrollWeek(viewport.Down)
	case ScrollPageUp:
		return e.view.ScrollPage(viewport.Up)
	case ScrollPageDown:
		return e.view.ScrollPage(viewport.Down)
	case JumpToday:
		e.view.JumpToToday(today)
		return true
	case OpenPrompt:
		return e.prompt.Open()
	case ShowHelp:
		e.help = true
		return true
	case Quit:
		e.quit = true
		return true
	}
	return false
}

func (e *Engine) dispatchPrompt(cmd Command) bool {
	var in prompt.Input
	switch cmd {
	case OpenPrompt, Cancel:
		in = prompt.Input{Kind: prompt.Cancel}
	case ToggleSign:
		in = prompt.Input{Kind: prompt.ToggleSign}
	case Positive:
		in = prompt.Input{Kind: prompt.Positive}
	case Backspace:
		in = prompt.Input{Kind: prompt.Backspace}
	case Commit:
		in = prompt.Input{Kind: prompt.Commit}
	default:
		n, ok := cmd.digit()
		if !ok {
			return false
		}
		in = prompt.DigitInput(n)
	}

	res := e.prompt.Handle(in)
	switch res.Status {
	case prompt.Accepted, prompt.Dismissed:
		return true
	case prompt.Committed:
		e.view.JumpTo(res.Date)
		return true
	case prompt.Rejected:
		e.err = res.Err
		e.log.Debug("jump rejected", "err", res.Err)
	}
	return false
}
