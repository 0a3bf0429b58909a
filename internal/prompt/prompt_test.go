package prompt

import (
	"errors"
	"testing"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
)

func typeDigits(p *Prompt, s string) {
	for _, c := range s {
		p.Handle(DigitInput(int(c - '0')))
	}
}

func TestCommitValidDate(t *testing.T) {
	var p Prompt
	if !p.Open() {
		t.Fatal("expected prompt to open")
	}
	typeDigits(&p, "20250101")
	res := p.Handle(Input{Kind: Commit})
	if res.Status != Committed {
		t.Fatalf("expected Committed, got %v (%v)", res.Status, res.Err)
	}
	want, _ := date.New(2025, 1, 1)
	if res.Date != want {
		t.Fatalf("expected %s, got %s", want, res.Date)
	}
	if p.IsOpen() {
		t.Fatal("prompt should be closed after commit")
	}
}

func TestCommitInvalidDate(t *testing.T) {
	for _, digits := range []string{"20251301", "20250230", "20250000"} {
		t.Run(digits, func(t *testing.T) {
			var p Prompt
			p.Open()
			typeDigits(&p, digits)
			res := p.Handle(Input{Kind: Commit})
			if res.Status != Rejected {
				t.Fatalf("expected Rejected, got %v", res.Status)
			}
			if !errors.Is(res.Err, date.ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", res.Err)
			}
			if p.IsOpen() {
				t.Fatal("prompt should close after a rejected commit")
			}
		})
	}
}

func TestNegativeYear(t *testing.T) {
	var p Prompt
	p.Open()
	p.Handle(Input{Kind: ToggleSign})
	typeDigits(&p, "00440315")
	res := p.Handle(Input{Kind: Commit})
	if res.Status != Committed || res.Date.String() != "-0044-03-15" {
		t.Fatalf("expected -0044-03-15, got %v %s", res.Status, res.Date)
	}
}

func TestSignAfterDigitIgnored(t *testing.T) {
	var p Prompt
	p.Open()
	p.Handle(DigitInput(2))
	if res := p.Handle(Input{Kind: ToggleSign}); res.Status != Ignored {
		t.Fatalf("expected Ignored, got %v", res.Status)
	}
	if !p.State().SignPositive {
		t.Fatal("sign should stay positive after a digit")
	}

	p.Close()
	p.Open()
	p.Handle(Input{Kind: ToggleSign})
	p.Handle(DigitInput(1))
	if res := p.Handle(Input{Kind: Positive}); res.Status != Ignored {
		t.Fatalf("expected Ignored, got %v", res.Status)
	}
	if p.State().SignPositive {
		t.Fatal("sign should stay negative after a digit")
	}
}

func TestPositiveForcesSign(t *testing.T) {
	var p Prompt
	p.Open()
	p.Handle(Input{Kind: ToggleSign})
	p.Handle(Input{Kind: Positive})
	if !p.State().SignPositive {
		t.Fatal("expected positive sign")
	}
	p.Handle(Input{Kind: Positive})
	if !p.State().SignPositive {
		t.Fatal("Positive should not toggle")
	}
}

func TestCancel(t *testing.T) {
	for n := 0; n <= MaxDigits; n++ {
		var p Prompt
		p.Open()
		typeDigits(&p, "20250101"[:n])
		if res := p.Handle(Input{Kind: Cancel}); res.Status != Dismissed {
			t.Fatalf("after %d digits: expected Dismissed, got %v", n, res.Status)
		}
		if p.IsOpen() || p.State().Digits != "" {
			t.Fatalf("after %d digits: prompt not reset: %+v", n, p.State())
		}
	}
}

func TestDigitLimitAndBackspace(t *testing.T) {
	var p Prompt
	p.Open()
	typeDigits(&p, "202501019")
	if got := p.State().Digits; got != "20250101" {
		t.Fatalf("expected 8 digits, got %q", got)
	}
	p.Handle(Input{Kind: Backspace})
	if got := p.State().Digits; got != "2025010" {
		t.Fatalf("expected backspace to remove a digit, got %q", got)
	}
	if res := p.Handle(Input{Kind: Commit}); res.Status != Ignored || !p.IsOpen() {
		t.Fatal("commit with 7 digits should be ignored")
	}
	for range MaxDigits {
		p.Handle(Input{Kind: Backspace})
	}
	if res := p.Handle(Input{Kind: Backspace}); res.Status != Ignored {
		t.Fatalf("backspace on empty entry should be ignored, got %v", res.Status)
	}
}

func TestClosedIgnoresInput(t *testing.T) {
	var p Prompt
	if res := p.Handle(DigitInput(1)); res.Status != Ignored {
		t.Fatalf("expected Ignored, got %v", res.Status)
	}
	p.Open()
	if p.Open() {
		t.Fatal("second Open should report false")
	}
}

func TestStateString(t *testing.T) {
	var p Prompt
	p.Open()
	if got := p.State().String(); got != " YYYY-MM-DD" {
		t.Fatalf("unexpected empty entry %q", got)
	}
	p.Handle(Input{Kind: ToggleSign})
	typeDigits(&p, "123405")
	if got := p.State().String(); got != "-1234-05-DD" {
		t.Fatalf("unexpected partial entry %q", got)
	}
	if p.State().Complete() {
		t.Fatal("entry should not be complete")
	}
}
