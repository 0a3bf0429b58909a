package engine

import (
	"errors"
	"testing"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
	"github.com/twiced-technology-gmbh/nhmoon/internal/prompt"
)

var today = date.MustParse("2025-02-04")

func dates(f Frame) []string {
	out := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = r.Date.String()
	}
	return out
}

func TestEndToEndScroll(t *testing.T) {
	e := New(date.MustParse("2025-02-04"), 7, nil)
	before := e.Frame(today)

	f := e.Handle(ScrollWeekDown, today)
	if got := f.Center().String(); got != "2025-02-11" {
		t.Fatalf("expected center 2025-02-11, got %s", got)
	}
	for i := range f.Rows {
		if f.Rows[i].Date.Ordinal() != before.Rows[i].Date.Ordinal()+7 {
			t.Fatalf("row %d did not shift by 7 days: %s -> %s", i, before.Rows[i].Date, f.Rows[i].Date)
		}
	}
	if f.Bell {
		t.Fatal("unexpected bell")
	}

	f = e.Handle(ScrollPageUp, today)
	if got := f.Center().String(); got != "2025-02-04" {
		t.Fatalf("expected center 2025-02-04, got %s", got)
	}
	if len(f.Rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(f.Rows))
	}
}

func TestFrameMarksTodayAndCenter(t *testing.T) {
	e := New(date.MustParse("2025-02-04"), 5, nil)
	f := e.Frame(date.MustParse("2025-02-05"))
	want := []string{"2025-02-02", "2025-02-03", "2025-02-04", "2025-02-05", "2025-02-06"}
	for i, d := range dates(f) {
		if d != want[i] {
			t.Fatalf("row %d: got %s, want %s", i, d, want[i])
		}
	}
	if !f.Rows[2].Center || f.Rows[2].Today {
		t.Fatalf("unexpected center row %+v", f.Rows[2])
	}
	if !f.Rows[3].Today || f.Rows[3].Center {
		t.Fatalf("unexpected today row %+v", f.Rows[3])
	}
}

func TestFramePhases(t *testing.T) {
	full := date.MustParse("2025-02-03").Ordinal()
	c := moon.Func(func(o date.Ordinal) moon.Phase {
		if o == full {
			return moon.Full
		}
		return moon.None
	})
	e := New(date.MustParse("2025-02-04"), 5, c)
	marked := e.Frame(today).Marked()
	if len(marked) != 1 || marked[0].Date.String() != "2025-02-03" || marked[0].Phase != moon.Full {
		t.Fatalf("unexpected marked rows %+v", marked)
	}

	e.SetClassifier(moon.Func(func(date.Ordinal) moon.Phase { return moon.New }))
	if got := len(e.Frame(today).Marked()); got != 5 {
		t.Fatalf("expected all rows marked after swapping classifier, got %d", got)
	}
}

func TestJumpPrompt(t *testing.T) {
	e := New(date.MustParse("2025-02-04"), 7, nil)
	f := e.Handle(OpenPrompt, today)
	if f.Prompt.Mode != prompt.Editing {
		t.Fatal("expected prompt to open")
	}
	// Scrolling is frozen while editing.
	if f = e.Handle(ScrollWeekDown, today); !f.Bell || f.Center().String() != "2025-02-04" {
		t.Fatalf("scroll while editing should ring the bell, center %s", f.Center())
	}
	for _, d := range []int{2, 0, 2, 4, 1, 2, 2, 5} {
		e.Handle(DigitCommand(d), today)
	}
	f = e.Handle(Commit, today)
	if f.Prompt.Mode != prompt.Closed {
		t.Fatal("expected prompt to close after commit")
	}
	if got := f.Center().String(); got != "2024-12-25" {
		t.Fatalf("expected jump to 2024-12-25, got %s", got)
	}
}

func TestJumpPromptRejected(t *testing.T) {
	e := New(date.MustParse("2025-02-04"), 7, nil)
	e.Handle(OpenPrompt, today)
	for _, d := range []int{2, 0, 2, 5, 1, 3, 0, 1} {
		e.Handle(DigitCommand(d), today)
	}
	f := e.Handle(Commit, today)
	if !errors.Is(f.Err, date.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", f.Err)
	}
	if !f.Bell || f.Prompt.Mode != prompt.Closed || f.Center().String() != "2025-02-04" {
		t.Fatalf("unexpected frame after rejected jump: %+v", f)
	}
	if f = e.Handle(ScrollWeekDown, today); f.Err != nil {
		t.Fatalf("error should clear on the next command, got %v", f.Err)
	}
}

func TestPromptDismiss(t *testing.T) {
	for _, cmd := range []Command{Cancel, OpenPrompt} {
		e := New(date.MustParse("2025-02-04"), 7, nil)
		e.Handle(OpenPrompt, today)
		e.Handle(Digit1, today)
		f := e.Handle(cmd, today)
		if f.Prompt.Mode != prompt.Closed || f.Center().String() != "2025-02-04" {
			t.Fatalf("%s: expected closed prompt and no jump", cmd)
		}
	}
}

func TestQuitIgnoredWhileEditing(t *testing.T) {
	e := New(date.MustParse("2025-02-04"), 7, nil)
	e.Handle(OpenPrompt, today)
	if f := e.Handle(Quit, today); f.Quit || !f.Bell {
		t.Fatalf("quit while editing should be ignored, got %+v", f)
	}
	e.Handle(Cancel, today)
	if f := e.Handle(Quit, today); !f.Quit {
		t.Fatal("expected quit flag")
	}
}

func TestHelpDismissedByAnyCommand(t *testing.T) {
	e := New(date.MustParse("2025-02-04"), 7, nil)
	if f := e.Handle(ShowHelp, today); !f.Help {
		t.Fatal("expected help to open")
	}
	f := e.Handle(ScrollWeekDown, today)
	if f.Help {
		t.Fatal("expected help to close")
	}
	if f.Center().String() != "2025-02-04" {
		t.Fatal("the dismissing command should not also scroll")
	}
}

func TestJumpToday(t *testing.T) {
	e := New(date.MustParse("1999-12-31"), 3, nil)
	f := e.Handle(JumpToday, today)
	if f.Center() != today || !f.Rows[1].Today {
		t.Fatalf("expected center on today, got %s", f.Center())
	}
}

func TestBellAtBoundaryAndOnPromptCommands(t *testing.T) {
	e := New(date.Max, 7, nil)
	if f := e.Handle(ScrollPageDown, today); !f.Bell {
		t.Fatal("expected bell at the end of time")
	}
	if f := e.Handle(Digit5, today); !f.Bell {
		t.Fatal("digit without an open prompt should ring the bell")
	}
	if f := e.Handle(ScrollWeekUp, today); f.Bell || f.Center().String() != "9999-12-24" {
		t.Fatalf("unexpected frame %+v", f)
	}
}

func TestFrameCenterAtEndOfRange(t *testing.T) {
	tests := []struct {
		center  date.Date
		wantRow int
	}{
		{date.Max, 6},
		{date.Min, 0},
		{date.MustParse("9999-12-29"), 4},
		{date.MustParse("2025-02-04"), 3},
	}
	for _, tt := range tests {
		t.Run(tt.center.String(), func(t *testing.T) {
			f := New(tt.center, 7, nil).Frame(today)
			for i, r := range f.Rows {
				if r.Center != (i == tt.wantRow) {
					t.Fatalf("row %d (%s): center=%v, want center on row %d", i, r.Date, r.Center, tt.wantRow)
				}
			}
			if f.Center() != tt.center {
				t.Fatalf("frame center %s, want %s", f.Center(), tt.center)
			}
		})
	}
}

func TestPromptCommandsIgnoredWhileClosed(t *testing.T) {
	for _, c := range Commands() {
		if !c.IsPromptCommand() {
			continue
		}
		e := New(today, 7, nil)
		f := e.Handle(c, today)
		if !f.Bell || f.Prompt.Mode != prompt.Closed || f.Center() != today {
			t.Fatalf("%s with the prompt closed: unexpected frame %+v", c, f)
		}
	}
}

func TestResize(t *testing.T) {
	e := New(date.MustParse("2025-02-04"), 7, nil)
	e.Resize(3)
	if got := len(e.Frame(today).Rows); got != 3 || e.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", got)
	}
}

func TestParseCommand(t *testing.T) {
	for _, c := range Commands() {
		got, err := ParseCommand(c.String())
		if err != nil || got != c {
			t.Fatalf("ParseCommand(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCommand("launch"); err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !Digit3.IsPromptCommand() || ScrollWeekUp.IsPromptCommand() {
		t.Fatal("unexpected IsPromptCommand result")
	}
}
