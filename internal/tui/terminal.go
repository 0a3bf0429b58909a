package tui

import (
	"os"
	"sync"
)

// terminal serializes writes to the program's output file. The renderer
// writes each frame in a single Write, so a bell written through the same
// terminal always lands between frames. Embedding *os.File keeps Fd and Read
// available for bubbletea's TTY handling.
type terminal struct {
	*os.File
	mu sync.Mutex
}

func newTerminal(f *os.File) *terminal {
	return &terminal{File: f}
}

// Write implements io.Writer.
func (t *terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.File.Write(p)
}
