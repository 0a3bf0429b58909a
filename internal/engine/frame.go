package engine

import (
	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
	"github.com/twiced-technology-gmbh/nhmoon/internal/prompt"
)

// Row is one visible date.
type Row struct {
	Date   date.Date  `json:"date"`
	Phase  moon.Phase `json:"phase"`
	Today  bool       `json:"today,omitempty"`
	Center bool       `json:"center,omitempty"`
}

// Frame is an immutable snapshot of everything a renderer needs.
type Frame struct {
	Rows   []Row
	Prompt prompt.State
	Help   bool
	Quit   bool
	// Err is set after a rejected jump and cleared by the next command.
	Err error
	// Bell is set when the command had no effect.
	Bell bool
}

// Center returns the centered date.
func (f Frame) Center() date.Date {
	for _, r := range f.Rows {
		if r.Center {
			return r.Date
		}
	}
	return date.Date{}
}

// Marked returns the rows whose phase is not None.
func (f Frame) Marked() []Row {
	var out []Row
	for _, r := range f.Rows {
		if r.Phase != moon.None {
			out = append(out, r)
		}
	}
	return out
}
