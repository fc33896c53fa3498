package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

// game owns the single board and everything needed to draw it
type game struct {
	config   utils.Config
	board    *model.Board
	renderer *model.TerminalRenderer
	out      io.Writer
	logger   *utils.Logger
	stats    *utils.Stats
	history  model.History
}

// initializeGame sets up the game state around an already built board
func initializeGame(config utils.Config, board *model.Board, out io.Writer, logger *utils.Logger) *game {
	return &game{
		config:   config,
		board:    board,
		renderer: model.NewTerminalRenderer(out),
		out:      out,
		logger:   logger,
		stats:    utils.NewStats(),
	}
}

// run draws and advances the board every frame until ctx is cancelled or the
// generation limit is reached. Cancellation is a normal way to stop.
func (g *game) run(ctx context.Context) error {
	g.logger.Infof("Board: %dx%d | Initial living cells: %d | Frame: %v",
		g.board.Size(), g.board.Size(), g.board.Population(), g.config.FrameRate)

	for generation := 0; g.config.MaxGenerations == 0 || generation < g.config.MaxGenerations; generation++ {
		if ctx.Err() != nil {
			return nil
		}

		frameStart := time.Now()
		if err := g.renderFrame(generation); err != nil {
			return err
		}

		g.updateGameState()

		if err := pause(ctx, g.config.FrameRate); err != nil {
			return nil
		}
		g.stats.Update(generation+1, g.board.Population(), time.Since(frameStart))
	}

	g.logger.Infof("Reached maximum generations limit (%d)", g.config.MaxGenerations)
	return nil
}

// renderFrame clears the terminal and draws the current generation
func (g *game) renderFrame(generation int) error {
	if err := g.renderer.Clear(); err != nil {
		return errors.Wrapf(err, "[renderFrame] generation %d", generation)
	}
	if err := g.renderer.Display(g.board); err != nil {
		return errors.Wrapf(err, "[renderFrame] generation %d", generation)
	}

	status := g.history.Record(g.board)
	if g.config.ShowStatus {
		displayGameStatus(g.out, generation, g.board.Population(), status)
	}
	return nil
}

// updateGameState advances the board one generation and logs each flip in debug mode
func (g *game) updateGameState() {
	delta := g.board.AdvanceGeneration()
	if !g.logger.DebugEnabled() {
		return
	}

	for _, c := range delta.Deaths {
		g.logger.Debugf("Cell [%d, %d] will die with %d neighbors!", c.Row, c.Col, c.Neighbors)
	}
	for _, c := range delta.Births {
		g.logger.Debugf("Cell [%d, %d] will be born with %d neighbors!", c.Row, c.Col, c.Neighbors)
	}
}

// displayGameStatus shows the current game status under the board
func displayGameStatus(out io.Writer, generation, livingCells int, status model.Status) {
	fmt.Fprintf(out, "Gen: %s | Living: %s | Status: %s\n",
		humanize.Comma(int64(generation)), humanize.Comma(int64(livingCells)), status)
}

// pause waits one frame interval, with no catch-up when a frame overran
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
