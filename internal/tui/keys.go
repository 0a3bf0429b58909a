package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twiced-technology-gmbh/nhmoon/internal/engine"
)

// navCommands are the commands available while browsing, in help order.
var navCommands = []engine.Command{
	engine.ScrollWeekDown,
	engine.ScrollWeekUp,
	engine.ScrollPageDown,
	engine.ScrollPageUp,
	engine.JumpToday,
	engine.OpenPrompt,
	engine.ShowHelp,
	engine.Quit,
}

// promptCommands are the commands available while the jump prompt is open.
var promptCommands = func() []engine.Command {
	var cmds []engine.Command
	for _, cmd := range engine.Commands() {
		if cmd.IsPromptCommand() {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}()

// keyMap maps physical keys to engine commands. It implements help.KeyMap
// for the browsing bindings.
type keyMap struct {
	bindings map[engine.Command]key.Binding
}

func defaultKeyMap() keyMap {
	b := map[engine.Command]key.Binding{
		engine.ScrollWeekDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next week")),
		engine.ScrollWeekUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev week")),
		engine.ScrollPageDown: key.NewBinding(key.WithKeys("z", "pgdown"), key.WithHelp("z/pgdn", "next page")),
		engine.ScrollPageUp:   key.NewBinding(key.WithKeys("w", "pgup"), key.WithHelp("w/pgup", "prev page")),
		engine.JumpToday:      key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0/home", "today")),
		engine.OpenPrompt:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "jump to date")),
		engine.ShowHelp:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		engine.Quit:           key.NewBinding(key.WithKeys("q", keyEsc), key.WithHelp("q", "quit")),

		engine.ToggleSign: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "toggle sign")),
		engine.Positive:   key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "positive year")),
		engine.Backspace:  key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("⌫", "delete digit")),
		engine.Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
		engine.Cancel:     key.NewBinding(key.WithKeys("q", keyEsc), key.WithHelp("esc", "cancel")),
	}
	for n := range 10 {
		digit := string(rune('0' + n))
		b[engine.DigitCommand(n)] = key.NewBinding(key.WithKeys(digit), key.WithHelp("0-9", "digit"))
	}
	return keyMap{bindings: b}
}

// newKeyMap returns the default bindings with overrides applied. An override
// replaces every key of its command and keeps the help description.
func newKeyMap(overrides map[engine.Command][]string) keyMap {
	k := defaultKeyMap()
	for cmd, keys := range overrides {
		b := k.bindings[cmd]
		b.SetKeys(keys...)
		if cmd < engine.Digit0 || cmd > engine.Digit9 {
			b.SetHelp(keys[0], b.Help().Desc)
		}
		k.bindings[cmd] = b
	}
	return k
}

// lookup finds the command for msg. While editing only prompt commands
// match, plus the jump key which dismisses the prompt.
func (k keyMap) lookup(msg tea.KeyMsg, editing bool) (engine.Command, bool) {
	if editing {
		for _, cmd := range promptCommands {
			if key.Matches(msg, k.bindings[cmd]) {
				return cmd, true
			}
		}
		if key.Matches(msg, k.bindings[engine.OpenPrompt]) {
			return engine.OpenPrompt, true
		}
		return 0, false
	}
	for _, cmd := range navCommands {
		if key.Matches(msg, k.bindings[cmd]) {
			return cmd, true
		}
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return k.list(
		engine.ScrollWeekDown, engine.ScrollWeekUp,
		engine.OpenPrompt, engine.JumpToday,
		engine.ShowHelp, engine.Quit,
	)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.list(navCommands...), k.promptHelp()}
}

// promptHelp lists the prompt bindings shown in the jump dialog.
func (k keyMap) promptHelp() []key.Binding {
	return k.list(engine.Digit0, engine.ToggleSign, engine.Backspace, engine.Commit, engine.Cancel)
}

func (k keyMap) list(cmds ...engine.Command) []key.Binding {
	out := make([]key.Binding, 0, len(cmds))
	for _, cmd := range cmds {
		out = append(out, k.bindings[cmd])
	}
	return out
}
