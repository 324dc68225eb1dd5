package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "sparse-gol"
	app.Usage = "Conway's Game of Life on a bounded board of sparse live cells"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "x", Usage: "X dimension (width) of the board"},
		cli.IntFlag{Name: "y", Usage: "Y dimension (height) of the board"},
		cli.IntFlag{Name: "p", Usage: "number of initial alive cells"},
		cli.IntFlag{Name: "i", Usage: "number of iterations to perform"},
		cli.BoolFlag{Name: "v", Usage: "print every generation"},
		cli.StringFlag{Name: "config", Usage: "JSON configuration file; flags override its values"},
		cli.StringFlag{Name: "neighborhood", Usage: "neighbor rule: moore or von-neumann"},
		cli.Int64Flag{Name: "seed", Usage: "random seed for reproducible runs (0 picks one)"},
		cli.BoolFlag{Name: "parallel", Usage: "evaluate each generation across all CPUs"},
		cli.BoolTFlag{Name: "pool", Usage: "recycle discarded generations"},
		cli.DurationFlag{Name: "frame-rate", Usage: "delay between printed generations"},
		cli.BoolFlag{Name: "clear", Usage: "clear the terminal before each printed generation"},
		cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
	}
	app.Action = func(c *cli.Context) error {
		config, err := buildConfig(c)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runGame(ctx, config, c.App.Writer, c.App.ErrWriter)
	}
	return app
}

// buildConfig layers explicitly set flags over the config file, or the defaults without one
func buildConfig(c *cli.Context) (utils.Config, error) {
	config := utils.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := utils.LoadConfig(path)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	if c.IsSet("x") {
		config.Width = c.Int("x")
	}
	if c.IsSet("y") {
		config.Height = c.Int("y")
	}
	if c.IsSet("p") {
		config.InitialPoints = c.Int("p")
	}
	if c.IsSet("i") {
		config.Iterations = c.Int("i")
	}
	if c.IsSet("v") {
		config.Verbose = c.Bool("v")
	}
	if c.IsSet("neighborhood") {
		config.Neighborhood = c.String("neighborhood")
	}
	if c.IsSet("seed") {
		config.Seed = c.Int64("seed")
	}
	if c.IsSet("parallel") {
		config.UseParallel = c.Bool("parallel")
	}
	if c.IsSet("pool") {
		config.UseMemoryPool = c.BoolT("pool")
	}
	if c.IsSet("frame-rate") {
		config.FrameRate = c.Duration("frame-rate")
	}
	if c.IsSet("clear") {
		config.ClearScreen = c.Bool("clear")
	}
	if c.IsSet("log-level") {
		config.LogLevel = c.String("log-level")
	}

	return config, config.Validate()
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runGame wires the logger, the game and the summary output for one run
func runGame(ctx context.Context, config utils.Config, stdout, stderr io.Writer) error {
	logger, err := utils.NewLogger(stderr, config.LogLevel)
	if err != nil {
		return err
	}

	game, err := model.NewGameOfLifeFromConfig(config, stdout, logger)
	if err != nil {
		return err
	}

	displayGameInfo(stdout, game, config.Verbose)
	if err = game.RunContext(ctx, config.Verbose); err != nil {
		displaySummary(stdout, game)
		return err
	}
	displaySummary(stdout, game)
	return nil
}
