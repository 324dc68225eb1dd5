package main

import (
	"fmt"
	"io"

	"github.com/sheikhrachel/sparse-gol/model"
)

// displayGameInfo shows the run parameters and, when verbose, the full starting state
func displayGameInfo(out io.Writer, game *model.GameOfLife, verbose bool) {
	if verbose {
		fmt.Fprintln(out, game)
		fmt.Fprintln(out)
		return
	}
	board := game.Board()
	fmt.Fprintf(out, "Grid: %dx%d | Neighborhood: %s | Iterations: %d | Initial living cells: %d\n",
		board.GetWidth(), board.GetHeight(), board.Neighborhood(), game.Iterations(), board.CountLivingCells())
}

// displaySummary reports the initial and final population once the run stops
func displaySummary(out io.Writer, game *model.GameOfLife) {
	stats := game.Stats()
	fmt.Fprintln(out, stats.Summary())
	if stats.StagnantSince >= 0 {
		fmt.Fprintf(out, "Board settled into a still life or oscillator at generation %d\n", stats.StagnantSince)
	}
}
