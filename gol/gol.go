package gol

import (
	"context"
	"errors"
	"time"
)

type distributorChannels struct {
	events     chan<- Event
	keyPresses <-chan rune
}

// Run starts the processing of Game of Life and blocks until YearsToLive
// generations have completed or 'q' is pressed. 'p' pauses and resumes
// between generations. events is closed before Run returns; keyPresses may be
// nil.
func Run(p Params, events chan<- Event, keyPresses <-chan rune, opts ...Option) error {
	defer close(events) // Stops the consumer gracefully. Removing may cause deadlock.

	opts = append([]Option{WithReporter(EventReporter{Events: events})}, opts...)
	sim, err := NewSimulation(p, opts...)
	if err != nil {
		return err
	}
	return distributor(sim, distributorChannels{events: events, keyPresses: keyPresses})
}

// distributor drives the generations of sim and interacts with the user.
func distributor(sim *Simulation, c distributorChannels) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 'q' cancels the running generation, 'p' is handled between generations
	pause_chan := make(chan struct{}, 1)
	if c.keyPresses != nil {
		go listen(ctx, c.keyPresses, cancel, pause_chan)
	}

	// Alive timer
	ticker := time.NewTicker(sim.aliveInterval)
	defer ticker.Stop()

	var run_err error
	c.events <- StateChange{sim.Generation(), Executing}
	for !sim.Done() {
		if err := sim.advance(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				run_err = err
			}
			break
		}
		// Handle events
		select {
		case <-ticker.C:
			c.events <- AliveCellsCount{sim.Generation(), sim.Grid().AliveCount()}
		case <-pause_chan:
			c.events <- StateChange{sim.Generation(), Paused}
			select {
			case <-pause_chan:
				c.events <- StateChange{sim.Generation(), Executing}
			case <-ctx.Done():
			}
		default:
		}
		if ctx.Err() != nil {
			break
		}
	}

	turn := sim.Generation()
	c.events <- FinalTurnComplete{
		CompletedTurns: turn,
		Alive:          sim.Grid().AliveCells(),
		World:          sim.Grid().Current(),
	}
	c.events <- StateChange{turn, Quitting}
	return run_err
}

// listen turns key presses into quit and pause requests until ctx is done.
func listen(ctx context.Context, keyPresses <-chan rune, quit context.CancelFunc, pause chan<- struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case key, ok := <-keyPresses:
			if !ok {
				return
			}
			switch key {
			case 'q':
				quit()
				return
			case 'p':
				select {
				case pause <- struct{}{}:
				default:
				}
			}
		}
	}
}
