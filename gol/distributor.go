package gol

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// rowProcessor computes one row of the next generation. Tests swap it to
// inject faults.
var rowProcessor = processRow

// Step computes exactly one generation, regardless of the configured
// lifetime. Workers are started for this generation only and each claims rows
// from the shared counter until none are left. The buffers are swapped only
// after every worker has returned; on error nothing is swapped.
func (s *Simulation) Step(ctx context.Context) error {
	generation := s.generation
	current := s.grid.Current()
	next := s.grid.Next()
	s.counter.reset(s.grid.WorldSize() + 1)

	group, group_ctx := errgroup.WithContext(ctx)
	for id := 0; id != s.p.Threads; id++ {
		id := id
		group.Go(func() error {
			return s.worker(group_ctx, generation, id, current, next)
		})
	}
	// Barrier: no worker of this generation is running past this point
	if err := group.Wait(); err != nil {
		return err
	}

	// Swap current and next buffers
	s.grid.Swap()
	s.generation++
	if s.verbose() {
		s.reporter.GenerationComplete(s.generation)
	}
	return nil
}

// worker claims rows until the counter is exhausted. Cancellation is checked
// between claims. A panic while processing a row is returned as a
// *WorkerError.
func (s *Simulation) worker(ctx context.Context, generation, id int, current, next [][]bool) (err error) {
	row := 0
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = &WorkerError{Generation: generation, Worker: id, Row: row, Cause: cause}
		}
	}()
	verbose := s.verbose()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var ok bool
		row, ok = s.counter.claim()
		if !ok {
			break
		}
		rowProcessor(row, current, next[row])
		if verbose {
			s.reporter.RowComplete(generation, id, row)
		}
	}
	if verbose {
		s.reporter.WorkerDone(generation, id)
	}
	return nil
}
