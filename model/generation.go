package model

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/rules"
)

// Candidates returns every cell that may be live in the next generation:
// the live cells and their in-bounds neighbors, each listed once.
func Candidates(b *Board) []Coord {
	size := b.cells.Len() * (len(b.neighborhood.Offsets()) + 1)
	seen := make(CoordSet, size)
	out := make([]Coord, 0, size)

	add := func(c Coord) {
		if !b.InBounds(c) || seen.Contains(c) {
			return
		}
		seen.Insert(c)
		out = append(out, c)
	}

	for c := range b.cells {
		add(c)
		for _, n := range b.Neighbors(c) {
			add(n)
		}
	}
	return out
}

func survives(b *Board, c Coord) bool {
	return rules.ApplyConwayRules(b.LiveNeighbors(c), b.IsAlive(c))
}

// NextGeneration returns the generation following b's current one as a new set. b is not modified.
func NextGeneration(b *Board) CoordSet {
	next := make(CoordSet)
	for _, c := range Candidates(b) {
		if survives(b, c) {
			next.Insert(c)
		}
	}
	return next
}

// Evaluator computes next generations, optionally splitting the candidates across workers
type Evaluator struct {
	Parallel bool
	Workers  int
	Pool     *SetPool
}

func (e Evaluator) newSet() CoordSet {
	if e.Pool != nil {
		return e.Pool.Get()
	}
	return make(CoordSet)
}

// Next computes the generation after b's current one. b is only read.
func (e Evaluator) Next(ctx context.Context, b *Board) (CoordSet, error) {
	candidates := Candidates(b)
	next := e.newSet()

	if !e.Parallel || len(candidates) == 0 {
		for _, c := range candidates {
			if survives(b, c) {
				next.Insert(c)
			}
		}
		return next, nil
	}

	numWorkers := e.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	var (
		eg, egCtx    = errgroup.WithContext(ctx)
		perWorker    = (len(candidates) + numWorkers - 1) / numWorkers // Ceiling division
		liveByWorker = make([][]Coord, numWorkers)
	)

	for i := range numWorkers {
		var (
			start = i * perWorker
			end   = min(start+perWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			for _, c := range candidates[start:end] {
				if survives(b, c) {
					liveByWorker[i] = append(liveByWorker[i], c)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		SetToPool(next, e.Pool)
		return nil, errors.Wrap(err, "[Evaluator.Next] parallel evaluation failed")
	}

	for _, live := range liveByWorker {
		for _, c := range live {
			next.Insert(c)
		}
	}
	return next, nil
}
