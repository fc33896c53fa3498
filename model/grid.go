package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/rules"
)

var (
	// ErrOutOfBounds is returned when a coordinate falls outside the board
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrNotSquare is returned when a cell matrix is empty, ragged or not square
	ErrNotSquare = errors.New("cells do not form a square matrix")
)

// neighborOffsets is the Moore neighborhood, (0,0) excluded
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a square grid of cells with hard edges
type Board struct {
	size  int
	cells [][]bool
}

// Change records a single cell flip produced by AdvanceGeneration
type Change struct {
	Row       int
	Col       int
	Neighbors int
}

// Delta lists the births and deaths of one generation step
type Delta struct {
	Births []Change
	Deaths []Change
}

// Empty reports whether the step changed nothing
func (d Delta) Empty() bool {
	return len(d.Births) == 0 && len(d.Deaths) == 0
}

// NewBoard creates an all-dead board with the given side length
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: newCells(size),
	}
}

// FromCells builds a board from a copy of cells, which must be a non-empty square matrix
func FromCells(cells [][]bool) (*Board, error) {
	if err := validateSquare(cells); err != nil {
		return nil, err
	}

	b := NewBoard(len(cells))
	for i, row := range cells {
		copy(b.cells[i], row)
	}
	return b, nil
}

func newCells(size int) [][]bool {
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return cells
}

func validateSquare(cells [][]bool) error {
	if len(cells) == 0 {
		return errors.Wrap(ErrNotSquare, "[validateSquare] no rows")
	}
	for i, row := range cells {
		if len(row) != len(cells) {
			return errors.Wrapf(ErrNotSquare, "[validateSquare] row %d has %d cells, want %d", i, len(row), len(cells))
		}
	}
	return nil
}

// Size returns the side length of the board
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (row, col) lies on the board
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Alive returns the state of a cell, off-board cells are dead
func (b *Board) Alive(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	return b.cells[row][col]
}

// Set sets a cell to alive (true) or dead (false)
func (b *Board) Set(row, col int, alive bool) error {
	if !b.InBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d, %d) on a %dx%d board", row, col, b.size, b.size)
	}
	b.cells[row][col] = alive
	return nil
}

// Cells returns a copy of the cell matrix
func (b *Board) Cells() [][]bool {
	out := newCells(b.size)
	for i, row := range b.cells {
		copy(out[i], row)
	}
	return out
}

// Population returns the number of living cells
func (b *Board) Population() (count int) {
	for _, row := range b.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both boards have the same size and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// CountLiveNeighbors counts living cells in the Moore neighborhood of (row, col).
// Offsets that leave the board are skipped, the board does not wrap.
func (b *Board) CountLiveNeighbors(row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if !b.InBounds(r, c) {
			continue
		}
		if b.cells[r][c] {
			count++
		}
	}
	return count
}

/*
AdvanceGeneration moves the board one generation forward.

Every cell is classified against the current state first and the births and
deaths are committed only after the whole scan, so no cell sees a neighbor
from the next generation.
*/
func (b *Board) AdvanceGeneration() Delta {
	var (
		delta      Delta
		becomeLive = newCells(b.size)
		becomeDead = newCells(b.size)
	)

	for i := range b.cells {
		for j := range b.cells[i] {
			k := b.CountLiveNeighbors(i, j)
			switch alive := b.cells[i][j]; {
			case alive && rules.Dies(k):
				becomeDead[i][j] = true
				delta.Deaths = append(delta.Deaths, Change{Row: i, Col: j, Neighbors: k})
			case !alive && rules.Born(k):
				becomeLive[i][j] = true
				delta.Births = append(delta.Births, Change{Row: i, Col: j, Neighbors: k})
			}
		}
	}

	for i := range b.cells {
		for j := range b.cells[i] {
			if becomeDead[i][j] {
				b.cells[i][j] = false
			}
			if becomeLive[i][j] {
				b.cells[i][j] = true
			}
		}
	}

	return delta
}
