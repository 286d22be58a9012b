package core

import "golang.org/x/sync/errgroup"

// StepParallel computes the same generation as Step, splitting the rows into
// up to workers bands that are evaluated concurrently. It returns only once
// every band has been written. workers <= 1 falls back to Step.
func (g *Grid) StepParallel(into *Grid, workers int) {
	mustMatch(g, into)
	if workers <= 1 || g.h < 2 {
		g.stepRows(into, 0, g.h)
		return
	}
	if workers > g.h {
		workers = g.h
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.h + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		startRow := i * rowsPerWorker
		if startRow >= g.h {
			break
		}
		endRow := min(startRow+rowsPerWorker, g.h)
		eg.Go(func() error {
			g.stepRows(into, startRow, endRow)
			return nil
		})
	}
	// Bands never fail; Wait is only a barrier.
	_ = eg.Wait()
}
