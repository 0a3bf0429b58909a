// Package prompt implements the jump-to-date input: a small state machine that
// collects a sign and eight digits and turns them into a date.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
)

// MaxDigits is the number of digits in a complete entry (YYYYMMDD).
const MaxDigits = 8

// Mode is the prompt state.
type Mode int

const (
	Closed Mode = iota
	Editing
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "closed"
}

// Kind identifies an input.
type Kind int

const (
	Digit Kind = iota
	ToggleSign
	Positive
	Backspace
	Commit
	Cancel
)

// Input is a single prompt input. Value is only used by Digit.
type Input struct {
	Kind  Kind
	Value int
}

// DigitInput returns the input for digit n.
func DigitInput(n int) Input {
	return Input{Kind: Digit, Value: n}
}

// Status reports what an input did.
type Status int

const (
	// Ignored means the input does not apply in the current state.
	Ignored Status = iota
	// Accepted means the input changed the entry.
	Accepted
	// Dismissed means the prompt was closed without a date.
	Dismissed
	// Committed means a valid date was produced and the prompt closed.
	Committed
	// Rejected means the entry was complete but not a valid date. The prompt
	// is closed.
	Rejected
)

// Result is the outcome of Handle.
type Result struct {
	Status Status
	Date   date.Date
	Err    error
}

// State is a read-only snapshot of a Prompt.
type State struct {
	Mode         Mode
	Digits       string
	SignPositive bool
}

// Complete reports whether all digits have been typed.
func (s State) Complete() bool {
	return len(s.Digits) == MaxDigits
}

// String formats the entry as -YYYY-MM-DD, with a space in place of the sign
// when positive and Y, M or D for digits not typed yet.
func (s State) String() string {
	const placeholders = "YYYYMMDD"
	var b strings.Builder
	if s.SignPositive {
		b.WriteByte(' ')
	} else {
		b.WriteByte('-')
	}
	for i := range MaxDigits {
		if i == 4 || i == 6 {
			b.WriteByte('-')
		}
		if i < len(s.Digits) {
			b.WriteByte(s.Digits[i])
		} else {
			b.WriteByte(placeholders[i])
		}
	}
	return b.String()
}

// Prompt holds the entry being typed. The zero value is a closed prompt.
type Prompt struct {
	mode     Mode
	digits   []byte
	negative bool
}

// Open starts a fresh entry. It reports false if the prompt was already open.
func (p *Prompt) Open() bool {
	if p.mode == Editing {
		return false
	}
	p.mode = Editing
	p.reset()
	return true
}

// Close discards the entry.
func (p *Prompt) Close() {
	p.mode = Closed
	p.reset()
}

// IsOpen reports whether the prompt is editing.
func (p *Prompt) IsOpen() bool { return p.mode == Editing }

// State returns a snapshot of the prompt.
func (p *Prompt) State() State {
	return State{Mode: p.mode, Digits: string(p.digits), SignPositive: !p.negative}
}

// Handle applies one input. Inputs that do not apply in the current state are
// reported as Ignored and leave the prompt unchanged.
func (p *Prompt) Handle(in Input) Result {
	if p.mode != Editing {
		return Result{Status: Ignored}
	}
	switch in.Kind {
	case Digit:
		if in.Value < 0 || in.Value > 9 || len(p.digits) >= MaxDigits {
			return Result{Status: Ignored}
		}
		p.digits = append(p.digits, byte('0'+in.Value))
	case ToggleSign:
		if len(p.digits) > 0 {
			return Result{Status: Ignored}
		}
		p.negative = !p.negative
	case Positive:
		if len(p.digits) > 0 {
			return Result{Status: Ignored}
		}
		p.negative = false
	case Backspace:
		if len(p.digits) == 0 {
			return Result{Status: Ignored}
		}
		p.digits = p.digits[:len(p.digits)-1]
	case Cancel:
		p.Close()
		return Result{Status: Dismissed}
	case Commit:
		if len(p.digits) != MaxDigits {
			return Result{Status: Ignored}
		}
		d, err := p.build()
		p.Close()
		if err != nil {
			return Result{Status: Rejected, Err: err}
		}
		return Result{Status: Committed, Date: d}
	default:
		return Result{Status: Ignored}
	}
	return Result{Status: Accepted}
}

func (p *Prompt) build() (date.Date, error) {
	year := number(p.digits[0:4])
	if p.negative {
		year = -year
	}
	month := number(p.digits[4:6])
	day := number(p.digits[6:8])
	d, err := date.New(year, time.Month(month), day)
	if err != nil {
		return date.Date{}, fmt.Errorf("jump to %s: %w", strings.TrimSpace(p.State().String()), err)
	}
	return d, nil
}

func (p *Prompt) reset() {
	p.digits = p.digits[:0]
	p.negative = false
}

func number(digits []byte) int {
	n := 0
	for _, c := range digits {
		n = n*10 + int(c-'0')
	}
	return n
}
