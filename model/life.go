package model

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/rules"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const bannerWidth = 100

// Options tune a GameOfLife beyond its required parameters. The zero value is usable.
type Options struct {
	Neighborhood rules.Neighborhood
	Rand         *rand.Rand
	Evaluator    Evaluator
	Renderer     Renderer
	Out          io.Writer
	Logger       log.Logger
	FrameRate    time.Duration
	ClearScreen  bool
}

// GameOfLife owns a board and drives it through a fixed number of generations
type GameOfLife struct {
	board         *Board
	iterations    int
	initialPoints int

	evaluator   Evaluator
	renderer    Renderer
	out         io.Writer
	logger      log.Logger
	frameRate   time.Duration
	clearScreen bool

	history *History
	stats   *utils.Stats
}

// NewGameOfLife builds a width x height board seeded with initialPoints random live cells
func NewGameOfLife(width, height, iterations, initialPoints int, opts Options) (*GameOfLife, error) {
	if iterations < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "[NewGameOfLife] iterations: %d", iterations)
	}

	board, err := NewBoard(width, height, opts.Neighborhood)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGameOfLife] failed to create board")
	}
	if err = board.SeedRandom(initialPoints, opts.Rand); err != nil {
		return nil, errors.Wrap(err, "[NewGameOfLife] failed to seed board")
	}

	g := &GameOfLife{
		board:         board,
		iterations:    iterations,
		initialPoints: initialPoints,
		evaluator:     opts.Evaluator,
		renderer:      opts.Renderer,
		out:           opts.Out,
		logger:        opts.Logger,
		frameRate:     opts.FrameRate,
		clearScreen:   opts.ClearScreen,
		history:       NewHistory(),
		stats:         utils.NewStats(board.CountLivingCells()),
	}
	if g.out == nil {
		g.out = os.Stdout
	}
	if g.renderer == nil {
		g.renderer = &TerminalRenderer{Out: g.out}
	}
	if g.logger == nil {
		g.logger = log.NewNopLogger()
	}
	return g, nil
}

// NewGameOfLifeFromConfig builds a GameOfLife from a validated configuration
func NewGameOfLifeFromConfig(config utils.Config, out io.Writer, logger log.Logger) (*GameOfLife, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	neighborhood, err := rules.ParseNeighborhood(config.Neighborhood)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGameOfLifeFromConfig] bad neighborhood")
	}

	var rng *rand.Rand
	if config.Seed != 0 {
		rng = rand.New(rand.NewSource(config.Seed))
	}

	var pool *SetPool
	if config.UseMemoryPool {
		pool = NewSetPool()
	}

	return NewGameOfLife(config.Width, config.Height, config.Iterations, config.InitialPoints, Options{
		Neighborhood: neighborhood,
		Rand:         rng,
		Evaluator:    Evaluator{Parallel: config.UseParallel, Pool: pool},
		Renderer:     &TerminalRenderer{Out: out},
		Out:          out,
		Logger:       logger,
		FrameRate:    config.FrameRate,
		ClearScreen:  config.ClearScreen,
	})
}

// Board returns the board being simulated
func (g *GameOfLife) Board() *Board {
	return g.board
}

// Iterations returns the number of generations Run computes
func (g *GameOfLife) Iterations() int {
	return g.iterations
}

// InitialPoints returns the requested number of seeded cells
func (g *GameOfLife) InitialPoints() int {
	return g.initialPoints
}

// Stats returns the counters collected so far
func (g *GameOfLife) Stats() *utils.Stats {
	return g.stats
}

// step computes one generation from a read-only view of the current one, then swaps it in
func (g *GameOfLife) step(ctx context.Context, generation int) error {
	start := time.Now()

	next, err := g.evaluator.Next(ctx, g.board)
	if err != nil {
		return errors.Wrapf(err, "[step] generation %d", generation)
	}
	SetToPool(g.board.Replace(next), g.evaluator.Pool)

	population := g.board.CountLivingCells()
	g.stats.Update(generation, population, time.Since(start))
	level.Debug(g.logger).Log("msg", "generation complete", "generation", generation, "alive", population)

	hash := HashCells(g.board.cells)
	if g.history.IsStagnant(hash) && g.stats.MarkStagnant(generation) {
		level.Info(g.logger).Log("msg", "board repeats a recent generation", "generation", generation, "alive", population)
	}
	g.history.Update(hash)
	return nil
}

func (g *GameOfLife) show() {
	if g.clearScreen {
		g.renderer.Clear()
	}
	g.renderer.Display(g.board)
}

// RunContext advances the board through all iterations, stopping early if ctx is done.
// With verbose set, the initial state and every generation are rendered.
func (g *GameOfLife) RunContext(ctx context.Context, verbose bool) error {
	level.Info(g.logger).Log("msg", "starting run",
		"width", g.board.width, "height", g.board.height,
		"iterations", g.iterations, "alive", g.board.CountLivingCells(),
		"neighborhood", g.board.neighborhood)
	g.history.Update(HashCells(g.board.cells))

	if verbose {
		fmt.Fprintln(g.out, "Initial State")
		g.show()
	}

	for i := range g.iterations {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "[RunContext] stopped after %d generations", i)
		}
		if err := g.step(ctx, i+1); err != nil {
			return err
		}
		if verbose {
			g.show()
			if g.frameRate > 0 {
				time.Sleep(g.frameRate)
			}
		}
	}

	level.Info(g.logger).Log("msg", "run complete",
		"generations", g.stats.TotalGenerations, "initial", g.stats.InitialPopulation,
		"final", g.board.CountLivingCells(), "runtime", time.Since(g.stats.StartTime))
	return nil
}

// Run advances the board through all iterations
func (g *GameOfLife) Run(verbose bool) {
	if err := g.RunContext(context.Background(), verbose); err != nil {
		level.Error(g.logger).Log("msg", "run failed", "err", err)
	}
}

func (g *GameOfLife) String() string {
	var sb strings.Builder
	sb.WriteString("GAME OF LIFE - Conway's\n")
	sb.WriteString(strings.Repeat("=", bannerWidth))
	fmt.Fprintf(&sb, "\n Running for %d iterations", g.iterations)
	fmt.Fprintf(&sb, "\n With initially %d cells alive", g.initialPoints)
	fmt.Fprintf(&sb, "\n With the following space: \nThe number of alive cells in the space is: %d\n%v",
		g.board.CountLivingCells(), g.board.cells.Sorted())
	return sb.String()
}
