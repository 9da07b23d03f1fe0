package ui

import (
	"fmt"
	"io"
)

// Screen is the terminal surface the renderer draws on. Tests substitute a
// buffer-backed implementation so cycles run without a real terminal.
type Screen interface {
	Clear()
	Print(text string)
}

// TermScreen drives a real ANSI terminal (or any writer that accepts the
// escape codes).
type TermScreen struct {
	Out io.Writer
}

// Clear moves the cursor home and wipes the previous frame.
func (s *TermScreen) Clear() {
	fmt.Fprint(s.Out, "\033[H\033[2J")
}

// Print writes text as-is.
func (s *TermScreen) Print(text string) {
	fmt.Fprint(s.Out, text)
}

// Draw clears the previous frame and writes the new one.
func Draw(s Screen, frames ...string) {
	s.Clear()
	for _, frame := range frames {
		s.Print(frame)
	}
}
