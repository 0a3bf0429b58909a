package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestTerminalKeepsFramesWhole(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	term := newTerminal(f)

	frame := "\x1b[2J\x1b[H" + strings.Repeat("Tu 04 ○ February\r\n", 50)
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 25 {
				_, _ = io.WriteString(term, frame)
			}
		}()
		go func() {
			defer wg.Done()
			for range 25 {
				_, _ = io.WriteString(term, "\a")
			}
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	rest := strings.ReplaceAll(string(data), frame, "")
	if rest != strings.Repeat("\a", 100) {
		t.Fatalf("bell interleaved with a frame: %d stray bytes", len(rest))
	}
}

func TestCalendarOutputIsTerminal(t *testing.T) {
	c, _ := newTestCalendar(t, nil)
	out, ok := c.Output().(interface{ Fd() uintptr })
	if !ok {
		t.Fatal("program output must expose Fd for TTY handling")
	}
	if out.Fd() != os.Stdout.Fd() {
		t.Fatal("program output should wrap stdout")
	}
	// The default bell shares the program output.
	c2, err := NewCalendar(c.cfg, c.today())
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}
	if c2.bell != c2.Output() {
		t.Fatal("bell must write through the program output")
	}
}
