package model

import "github.com/pkg/errors"

// GliderPattern is the canonical glider, heading down and to the right
var GliderPattern = [][]bool{
	{false, true, false},
	{false, false, true},
	{true, true, true},
}

// BlinkerPattern is a horizontal period 2 oscillator
var BlinkerPattern = [][]bool{
	{true, true, true},
}

// Stamp copies pattern onto the board with its top-left corner at (row, col).
// Dead pattern cells clear the board; cells falling off the board are an error
// and leave the board untouched.
func (b *Board) Stamp(pattern [][]bool, row, col int) error {
	for i, line := range pattern {
		for j := range line {
			if !b.InBounds(row+i, col+j) {
				return errors.Wrapf(ErrOutOfBounds, "[Stamp] pattern at (%d, %d) does not fit a %dx%d board", row, col, b.size, b.size)
			}
		}
	}

	for i, line := range pattern {
		for j, alive := range line {
			b.cells[row+i][col+j] = alive
		}
	}
	return nil
}

// AddGlider adds a glider pattern at the specified position
func (b *Board) AddGlider(row, col int) error {
	return b.Stamp(GliderPattern, row, col)
}

// AddBlinker adds a blinker oscillator pattern
func (b *Board) AddBlinker(row, col int) error {
	return b.Stamp(BlinkerPattern, row, col)
}
