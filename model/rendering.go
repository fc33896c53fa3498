package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "▣  "
	gridPosDead  = ".  \x1b[39m"

	clearScreen = "\x1b[H\x1b[2J"
)

// TerminalRenderer draws boards as text onto a terminal
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display renders the board, one line per row
func (r *TerminalRenderer) Display(b *Board) error {
	w := bufio.NewWriter(r.out)
	for _, row := range b.cells {
		for _, alive := range row {
			if alive {
				w.WriteString(gridPosAlive)
			} else {
				w.WriteString(gridPosDead)
			}
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write board")
	}
	return nil
}

// Clear homes the cursor and clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, clearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
