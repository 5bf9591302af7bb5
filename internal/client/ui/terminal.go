package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// TerminalContainer prints every appended line to w. When w is a terminal,
// Clear also wipes the screen so each render replaces the previous one;
// otherwise the output is an append-only log of renders.
type TerminalContainer struct {
	w     io.Writer
	tty   bool
	lines []string
}

func NewTerminalContainer(w io.Writer) *TerminalContainer {
	c := &TerminalContainer{w: w}
	if f, ok := w.(*os.File); ok {
		c.tty = isTerminal(int(f.Fd()))
	}
	return c
}

func (c *TerminalContainer) Clear() {
	c.lines = nil
	if c.tty {
		fmt.Fprint(c.w, clearScreen)
	}
}

func (c *TerminalContainer) Append(line string) {
	c.lines = append(c.lines, line)
	fmt.Fprintln(c.w, line)
}

// Lines returns a copy of what is currently displayed.
func (c *TerminalContainer) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Reprint writes the current display again without changing it.
func (c *TerminalContainer) Reprint() {
	for _, line := range c.lines {
		fmt.Fprintln(c.w, line)
	}
}
