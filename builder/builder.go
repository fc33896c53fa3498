// Package builder creates boards interactively from line-based text input.
package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
)

// MaxSize bounds the side length accepted from input
const MaxSize = 1024

const sentinel = "-1"

var (
	// ErrBadCoordinate is returned for a line that is not an "a, b" integer pair
	ErrBadCoordinate = errors.New("coordinate must be two integers in the form \"a, b\"")
	// ErrBadSize is returned for a side length that is not a usable integer
	ErrBadSize = errors.New("side length must be a positive integer")
)

// Builder reads a board size and live cells from in, reporting to out
type Builder struct {
	in       *bufio.Reader
	out      io.Writer
	prompts  bool
	renderer *model.TerminalRenderer
	save     func(filename string, b *model.Board) error
}

// Option configures a Builder
type Option func(*Builder)

// WithPrompts toggles prompts and board previews. Problems with the input are reported either way.
func WithPrompts(enabled bool) Option {
	return func(b *Builder) {
		b.prompts = enabled
	}
}

// WithSaver replaces the function used to persist the finished board
func WithSaver(save func(filename string, b *model.Board) error) Option {
	return func(b *Builder) {
		b.save = save
	}
}

// New creates a Builder. Prompts are on by default.
func New(in io.Reader, out io.Writer, opts ...Option) *Builder {
	b := &Builder{
		in:       bufio.NewReader(in),
		out:      out,
		prompts:  true,
		renderer: model.NewTerminalRenderer(out),
		save:     model.SaveBoard,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs the whole dialogue: size, live cells, then an optional save path.
// Only a failure to read input is returned as an error.
func (b *Builder) Build() (*model.Board, error) {
	size, err := b.readSize()
	if err != nil {
		return nil, err
	}

	board := model.NewBoard(size)
	if err = b.readCells(board); err != nil {
		return nil, err
	}

	if err = b.offerSave(board); err != nil {
		return nil, err
	}
	return board, nil
}

func (b *Builder) readSize() (int, error) {
	for {
		b.prompt("How many lines on each side is this board: ")
		line, err := b.readLine()
		if err == io.EOF {
			return 0, errors.Wrap(io.ErrUnexpectedEOF, "[readSize] input ended before a board size was given")
		}
		if err != nil {
			return 0, err
		}

		size, err := ParseSize(line)
		if err != nil {
			fmt.Fprintf(b.out, "%q is not a valid size: %v\n", line, errors.Cause(err))
			continue
		}
		return size, nil
	}
}

func (b *Builder) readCells(board *model.Board) error {
	n := board.Size()
	b.prompt(fmt.Sprintf("Add \"live\" cell addresses (in the form \"a, b\") in range %dx%d (not inclusive)\n"+
		"(Enter %s or a blank to continue)\n", n, n, sentinel))

	for {
		line, err := b.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" || line == sentinel {
			return nil
		}

		row, col, err := ParseCoordinate(line)
		if err != nil {
			fmt.Fprintf(b.out, "%q skipped: %v\n", line, errors.Cause(err))
			continue
		}
		if !board.InBounds(row, col) {
			fmt.Fprintf(b.out, "Addresses must be in range [0 - %d]!\n", n-1)
			continue
		}
		if board.Alive(row, col) {
			fmt.Fprintf(b.out, "%d, %d is already alive!\n", row, col)
			continue
		}

		if err = board.Set(row, col, true); err != nil {
			return err
		}
		if b.prompts {
			if err = b.renderer.Display(board); err != nil {
				return err
			}
		}
	}
}

func (b *Builder) offerSave(board *model.Board) error {
	b.prompt("Where should this board be saved? (blank for no save): ")
	path, err := b.readLine()
	if err != nil && err != io.EOF {
		return err
	}
	if path == "" {
		return nil
	}

	if err = b.save(path, board); err != nil {
		fmt.Fprintf(b.out, "Unable to save board: %v\n", err)
		return nil
	}
	b.prompt(fmt.Sprintf("Saved board to %s\n", path))
	return nil
}

// readLine returns the next trimmed line. A final line without a newline is
// returned with a nil error, io.EOF only once nothing is left.
func (b *Builder) readLine() (string, error) {
	line, err := b.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "[readLine] failed to read input")
	}
	return strings.TrimSpace(line), err
}

func (b *Builder) prompt(msg string) {
	if b.prompts {
		fmt.Fprint(b.out, msg)
	}
}

// ParseSize parses a board side length in [1, MaxSize]
func ParseSize(s string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrBadSize, "[ParseSize] %v", err)
	}
	if size < 1 || size > MaxSize {
		return 0, errors.Wrapf(ErrBadSize, "[ParseSize] %d is outside [1, %d]", size, MaxSize)
	}
	return size, nil
}

// ParseCoordinate parses an "a, b" pair into a row and column.
// Range checking against a board is left to the caller.
func ParseCoordinate(s string) (row, col int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Wrapf(ErrBadCoordinate, "[ParseCoordinate] got %d parts", len(parts))
	}

	if row, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, errors.Wrapf(ErrBadCoordinate, "[ParseCoordinate] row: %v", err)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, errors.Wrapf(ErrBadCoordinate, "[ParseCoordinate] col: %v", err)
	}
	return row, col, nil
}
