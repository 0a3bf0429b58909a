package engine

import (
	"fmt"
	"strings"
)

// Command is a logical key command.
type Command int

const (
	ScrollWeekUp Command = iota
	ScrollWeekDown
	ScrollPageUp
	ScrollPageDown
	JumpToday
	OpenPrompt
	ShowHelp
	Quit
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	ToggleSign
	Positive
	Backspace
	Commit
	Cancel

	numCommands
)

var commandNames = [numCommands]string{
	ScrollWeekUp:   "scroll_week_up",
	ScrollWeekDown: "scroll_week_down",
	ScrollPageUp:   "scroll_page_up",
	ScrollPageDown: "scroll_page_down",
	JumpToday:      "jump_today",
	OpenPrompt:     "open_prompt",
	ShowHelp:       "show_help",
	Quit:           "quit",
	Digit0:         "digit_0",
	Digit1:         "digit_1",
	Digit2:         "digit_2",
	Digit3:         "digit_3",
	Digit4:         "digit_4",
	Digit5:         "digit_5",
	Digit6:         "digit_6",
	Digit7:         "digit_7",
	Digit8:         "digit_8",
	Digit9:         "digit_9",
	ToggleSign:     "toggle_sign",
	Positive:       "positive",
	Backspace:      "backspace",
	Commit:         "commit",
	Cancel:         "cancel",
}

// String returns the command's configuration name.
func (c Command) String() string {
	if c < 0 || c >= numCommands {
		return fmt.Sprintf("command(%d)", int(c))
	}
	return commandNames[c]
}

// Commands returns every command in declaration order.
func Commands() []Command {
	cmds := make([]Command, numCommands)
	for i := range cmds {
		cmds[i] = Command(i)
	}
	return cmds
}

// ParseCommand looks up a command by its configuration name.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// DigitCommand returns the command for digit n, which must be 0 through 9.
func DigitCommand(n int) Command {
	return Digit0 + Command(n)
}

// IsPromptCommand reports whether c only applies while the prompt is open.
func (c Command) IsPromptCommand() bool {
	return c >= Digit0 && c <= Cancel
}

func (c Command) digit() (int, bool) {
	if c >= Digit0 && c <= Digit9 {
		return int(c - Digit0), true
	}
	return 0, false
}
