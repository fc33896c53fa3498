package model

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// MarshalJSON encodes the board as a 2D array of booleans
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.cells)
}

// UnmarshalJSON decodes a 2D array of booleans, rejecting non-square input
func (b *Board) UnmarshalJSON(data []byte) error {
	var cells [][]bool
	if err := json.Unmarshal(data, &cells); err != nil {
		return errors.Wrap(err, "[UnmarshalJSON] failed to decode cells")
	}
	decoded, err := FromCells(cells)
	if err != nil {
		return err
	}

	*b = *decoded
	return nil
}

// ReadBoard decodes a board from r. All of r must be a single JSON matrix.
func ReadBoard(r io.Reader) (*Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "[ReadBoard] failed to read board")
	}

	b := &Board{}
	if err = json.Unmarshal(data, b); err != nil {
		return nil, errors.Wrap(err, "[ReadBoard] failed to decode board")
	}
	return b, nil
}

// LoadBoard loads a board from a JSON file
func LoadBoard(filename string) (*Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to open file: %+v", filename)
	}
	defer f.Close()

	b, err := ReadBoard(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to load board from file: %+v", filename)
	}
	return b, nil
}

// SaveBoard writes the board to a JSON file, replacing any existing content
func SaveBoard(filename string, b *Board) error {
	data, err := json.Marshal(b)
	if err != nil {
		return errors.Wrap(err, "[SaveBoard] failed to marshal board")
	}

	if err = os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "[SaveBoard] failed to write file: %+v", filename)
	}
	return nil
}
