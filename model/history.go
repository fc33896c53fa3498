package model

import (
	"crypto/md5"
	"fmt"
)

const historySize = 5

// Status describes the long-run shape of a board as seen through its history
type Status string

const (
	StatusActive      Status = "Active"
	StatusStill       Status = "Still"
	StatusOscillating Status = "Oscillating"
	StatusExtinct     Status = "Extinct"
)

// Fingerprint returns an MD5 hash of the current board state
func (b *Board) Fingerprint() string {
	h := md5.New()
	for _, row := range b.cells {
		for _, alive := range row {
			if alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History keeps the fingerprints of the last few generations to spot cycles
type History struct {
	seen []string
}

// Record adds the board's current state and classifies it against earlier generations
func (h *History) Record(b *Board) Status {
	current := b.Fingerprint()
	status := h.classify(current)
	if b.Population() == 0 {
		status = StatusExtinct
	}

	h.seen = append(h.seen, current)
	// Keep only the last few states
	if len(h.seen) > historySize {
		h.seen = h.seen[1:]
	}
	return status
}

func (h *History) classify(current string) Status {
	for back := 1; back <= len(h.seen); back++ {
		if h.seen[len(h.seen)-back] != current {
			continue
		}
		if back == 1 {
			return StatusStill
		}
		return StatusOscillating
	}
	return StatusActive
}
