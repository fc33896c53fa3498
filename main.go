package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-board/boards"
	"github.com/sheikhrachel/gol-board/builder"
	"github.com/sheikhrachel/gol-board/model"
	"github.com/sheikhrachel/gol-board/utils"
)

const (
	defaultConfigPath = "config.json"

	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program behind main, returning the process exit status
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gol-board", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", defaultConfigPath, "path to a JSON configuration file")
		boardPath   = fs.String("board_json", utils.DefaultBoardPath, "path to a JSON defining a board, or a bundled pattern name")
		createBoard = fs.Bool("create_board", false, "interactively create a board")
		debug       = fs.Bool("debug", false, "log every birth and death")
	)
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return exitUsage
	}

	// Load configuration - fallback to defaults if the default file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	usingDefaults := err != nil
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) || *configPath != defaultConfigPath {
			utils.NewLogger(stderr, false).Errorf("%v", err)
			return exitError
		}
		config = utils.DefaultConfig()
	}

	// Flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "board_json":
			config.BoardPath = *boardPath
		case "create_board":
			config.CreateBoard = *createBoard
		case "debug":
			config.Debug = *debug
		}
	})

	logger := utils.NewLogger(stderr, config.Debug)
	if usingDefaults {
		logger.Warnf("Using default configuration (%s not found)", defaultConfigPath)
	}
	if err = config.Validate(); err != nil {
		logger.Errorf("%v", err)
		return exitError
	}

	board, err := initialBoard(config, stdin, stdout, logger)
	if err != nil {
		logger.Errorf("%v", err)
		return exitError
	}

	if err = play(ctx, config, board, stdout, logger); err != nil {
		logger.Errorf("%v", err)
		return exitError
	}
	return exitOK
}

// initialBoard builds the board interactively or loads it from disk
func initialBoard(config utils.Config, stdin io.Reader, stdout io.Writer, logger *utils.Logger) (*model.Board, error) {
	if config.CreateBoard {
		return builder.New(stdin, stdout, builder.WithPrompts(isTerminal(stdin))).Build()
	}

	board, err := model.LoadBoard(config.BoardPath)
	if err == nil {
		return board, nil
	}
	if !os.IsNotExist(errors.Cause(err)) {
		return nil, err
	}

	if config.BoardPath == utils.DefaultBoardPath {
		logger.Warnf("Using bundled glider (%s not found)", config.BoardPath)
		return boards.Load("glider")
	}
	if bundled, bErr := isBundled(config.BoardPath); bErr != nil || !bundled {
		return nil, err
	}

	logger.Infof("Using bundled pattern %q", config.BoardPath)
	return boards.Load(config.BoardPath)
}

// isBundled reports whether name is one of the patterns compiled into the binary
func isBundled(name string) (bool, error) {
	names, err := boards.Names()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// usage prints the flag defaults followed by the bundled pattern names
func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()

	names, err := boards.Names()
	if err != nil {
		return
	}
	fmt.Fprintf(out, "\nBundled patterns for -board_json: %s\n", strings.Join(names, ", "))
}

// play runs the frame loop next to a watcher that stops it on SIGINT or SIGTERM
func play(ctx context.Context, config utils.Config, board *model.Board, stdout io.Writer, logger *utils.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := initializeGame(config, board, stdout, logger)
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		return g.run(egCtx)
	})

	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Infof("Received %v, shutting down gracefully...", sig)
			cancel()
		case <-egCtx.Done():
		}
		return nil
	})

	err := eg.Wait()
	logger.Infof("Final stats: %s", g.stats.Summary())
	return err
}

// isTerminal reports whether r is an interactive terminal
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
