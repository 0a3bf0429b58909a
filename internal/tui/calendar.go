// Package tui implements the terminal calendar.
package tui

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twiced-technology-gmbh/nhmoon/internal/config"
	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/engine"
	"github.com/twiced-technology-gmbh/nhmoon/internal/prompt"
)

// Key and layout constants.
const (
	keyEsc = "esc"

	// header, notice line and status bar around the date rows
	calendarChrome = 3
	tickInterval   = time.Minute // how often today's marker is refreshed
)

// Calendar is the top-level bubbletea model.
type Calendar struct {
	cfg    *config.Config
	eng    *engine.Engine
	keys   keyMap
	help   help.Model
	styles dayStyles
	frame  engine.Frame
	width  int
	height int
	notice error            // config reload or watcher problem
	now    func() time.Time // clock for today; defaults to time.Now
	out    *terminal
	bell   io.Writer
	log    *slog.Logger

	helpCache      string
	helpCacheWidth int
}

// NewCalendar creates a Calendar centered on center.
func NewCalendar(cfg *config.Config, center date.Date) (*Calendar, error) {
	classifier, err := cfg.Classifier()
	if err != nil {
		return nil, err
	}
	overrides, err := cfg.KeyOverrides()
	if err != nil {
		return nil, err
	}
	out := newTerminal(os.Stdout)
	c := &Calendar{
		cfg:    cfg,
		keys:   newKeyMap(overrides),
		help:   help.New(),
		styles: newDayStyles(cfg.TUI),
		now:    time.Now,
		out:    out,
		bell:   out,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	c.eng = engine.New(center, 1, classifier)
	c.frame = c.eng.Frame(c.today())
	return c, nil
}

// SetNow overrides the clock used to find today's date (for testing).
func (c *Calendar) SetNow(fn func() time.Time) {
	c.now = fn
	c.frame = c.eng.Frame(c.today())
}

// Output returns the writer the program must render to. The bell shares it,
// so pass it to tea.WithOutput.
func (c *Calendar) Output() io.Writer {
	return c.out
}

// SetBellWriter sets where the terminal bell is written.
func (c *Calendar) SetBellWriter(w io.Writer) {
	c.bell = w
}

// SetLogger routes command and reload tracing to l.
func (c *Calendar) SetLogger(l *slog.Logger) {
	c.log = l
	c.eng.SetLogger(l)
}

// Frame returns the most recent frame.
func (c *Calendar) Frame() engine.Frame {
	return c.frame
}

// WatchPaths returns the files that should be watched for changes.
func (c *Calendar) WatchPaths() []string {
	if c.cfg.Path() == "" {
		return nil
	}
	return []string{c.cfg.Path()}
}

// Init implements tea.Model.
func (c *Calendar) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (c *Calendar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c.handleKey(msg)
	case tea.MouseMsg:
		return c.handleMouse(msg)
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.help.Width = msg.Width
		c.eng.Resize(msg.Height - calendarChrome)
		c.frame = c.eng.Frame(c.today())
		return c, nil
	case ReloadMsg:
		c.reload()
		return c, nil
	case TickMsg:
		c.frame = c.eng.Frame(c.today())
		return c, tickCmd()
	case errMsg:
		c.notice = msg.err
		return c, nil
	}
	return c, nil
}

func (c *Calendar) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys.
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		return c, tea.Quit
	}

	cmd, ok := c.keys.lookup(msg, c.frame.Prompt.Mode == prompt.Editing)
	if !ok {
		if !c.frame.Help {
			return c, c.ringBell()
		}
		// Any key closes the help overlay.
		cmd = engine.Cancel
	}
	return c.dispatch(cmd)
}

func (c *Calendar) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || c.frame.Help || c.frame.Prompt.Mode == prompt.Editing {
		return c, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return c.dispatch(engine.ScrollWeekUp)
	case tea.MouseButtonWheelDown:
		return c.dispatch(engine.ScrollWeekDown)
	}
	return c, nil
}

func (c *Calendar) dispatch(cmd engine.Command) (tea.Model, tea.Cmd) {
	c.frame = c.eng.Handle(cmd, c.today())
	if c.frame.Quit {
		return c, tea.Quit
	}
	if c.frame.Bell {
		return c, c.ringBell()
	}
	return c, nil
}

func (c *Calendar) ringBell() tea.Cmd {
	if !c.cfg.Bell() || c.bell == nil {
		return nil
	}
	w := c.bell
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}

// reload re-reads the config file and applies the moon model, colors and
// key bindings. A broken file leaves the previous settings active.
func (c *Calendar) reload() {
	cfg, err := config.Load(c.cfg.Path())
	if err != nil {
		c.log.Warn("config reload failed", "path", c.cfg.Path(), "err", err)
		c.notice = err
		return
	}
	overrides, err := cfg.KeyOverrides()
	if err != nil {
		c.notice = err
		return
	}
	classifier, err := cfg.Classifier()
	if err != nil {
		c.notice = err
		return
	}
	c.cfg = cfg
	c.notice = nil
	c.keys = newKeyMap(overrides)
	c.styles = newDayStyles(cfg.TUI)
	c.helpCache = ""
	c.eng.SetClassifier(classifier)
	c.frame = c.eng.Frame(c.today())
	c.log.Info("config reloaded", "path", cfg.Path(), "model", cfg.Moon.Model)
}

// today converts the clock reading. A clock outside the supported years
// falls back to the centered date.
func (c *Calendar) today() date.Date {
	d, err := date.FromTime(c.now())
	if err != nil {
		return c.eng.Center()
	}
	return d
}

// --- Messages ---

// ReloadMsg is sent by the file watcher to trigger a config reload.
type ReloadMsg struct{}

type errMsg struct{ err error }

// ErrMsg wraps a background error for display in the status bar.
func ErrMsg(err error) tea.Msg { return errMsg{err: err} }

// TickMsg is sent periodically so today's marker follows the clock.
type TickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return TickMsg{} })
}
