package gol

import (
	"context"
	"errors"
	"testing"
	"time"
)

// collect drains events until the channel is closed.
func collect(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var all []Event
	timeout := time.After(10 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return all
			}
			all = append(all, event)
		case <-timeout:
			t.Fatal("events channel not closed")
		}
	}
}

func TestRunFast(t *testing.T) {
	p := Params{WorldSize: 16, YearsToLive: 5, Threads: 4, Mode: Fast, Seed: 3}
	events := make(chan Event)
	result := make(chan error, 1)
	go func() { result <- Run(p, events, nil) }()
	all := collect(t, events)
	if err := <-result; err != nil {
		t.Fatal(err)
	}

	if first, ok := all[0].(StateChange); !ok || first.NewState != Executing {
		t.Errorf("first event %#v, want StateChange Executing", all[0])
	}
	if last, ok := all[len(all)-1].(StateChange); !ok || last.NewState != Quitting || last.CompletedTurns != 5 {
		t.Errorf("last event %#v, want StateChange Quitting after 5 turns", all[len(all)-1])
	}
	var final *FinalTurnComplete
	for _, event := range all {
		switch e := event.(type) {
		case RowComplete, WorkerDone, TurnComplete:
			t.Fatalf("progress event %v in FAST mode", e)
		case FinalTurnComplete:
			final = &e
		}
	}
	if final == nil {
		t.Fatal("no FinalTurnComplete event")
	}
	if final.CompletedTurns != 5 || len(final.World) != 18 {
		t.Errorf("final turn %d with a world of %d rows", final.CompletedTurns, len(final.World))
	}

	sim := mustSimulation(t, p)
	if err := sim.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(final.Alive) != sim.Grid().AliveCount() {
		t.Errorf("final event has %d alive cells, want %d", len(final.Alive), sim.Grid().AliveCount())
	}
}

func TestRunVerbose(t *testing.T) {
	p := Params{WorldSize: 8, YearsToLive: 4, Threads: 3, Mode: Verbose, Seed: 4}
	events := make(chan Event)
	result := make(chan error, 1)
	go func() { result <- Run(p, events, nil) }()
	all := collect(t, events)
	if err := <-result; err != nil {
		t.Fatal(err)
	}

	rows, workers, turns := 0, 0, 0
	for _, event := range all {
		switch e := event.(type) {
		case RowComplete:
			rows++
			if e.Row < 1 || e.Row > p.WorldSize {
				t.Errorf("row %d reported", e.Row)
			}
		case WorkerDone:
			workers++
		case TurnComplete:
			turns++
			if e.CompletedTurns != turns {
				t.Errorf("turn %d reported as %d", turns, e.CompletedTurns)
			}
		}
	}
	if rows != p.WorldSize*p.YearsToLive || workers != p.Threads*p.YearsToLive || turns != p.YearsToLive {
		t.Errorf("%d rows, %d workers, %d turns reported", rows, workers, turns)
	}
}

func TestRunQuit(t *testing.T) {
	p := Params{WorldSize: 32, YearsToLive: 1 << 30, Threads: 2, Seed: 5}
	events := make(chan Event, 100)
	keyPresses := make(chan rune, 1)
	result := make(chan error, 1)
	go func() { result <- Run(p, events, keyPresses) }()
	keyPresses <- 'q'
	all := collect(t, events)
	if err := <-result; err != nil {
		t.Fatalf("Run() after quit = %v", err)
	}
	for _, event := range all {
		if final, ok := event.(FinalTurnComplete); ok {
			if final.CompletedTurns >= p.YearsToLive {
				t.Errorf("all %d turns completed despite quitting", final.CompletedTurns)
			}
			return
		}
	}
	t.Error("no FinalTurnComplete event after quitting")
}

func TestRunPause(t *testing.T) {
	p := Params{WorldSize: 16, YearsToLive: 1 << 30, Threads: 2, Seed: 6}
	events := make(chan Event, 100)
	keyPresses := make(chan rune, 1)
	result := make(chan error, 1)
	go func() { result <- Run(p, events, keyPresses) }()

	waitFor := func(state State) int {
		timeout := time.After(10 * time.Second)
		for {
			select {
			case event := <-events:
				if e, ok := event.(StateChange); ok && e.NewState == state {
					return e.CompletedTurns
				}
			case <-timeout:
				t.Fatalf("no %v state change", state)
			}
		}
	}
	waitFor(Executing)
	keyPresses <- 'p'
	paused_at := waitFor(Paused)
	keyPresses <- 'p'
	if resumed_at := waitFor(Executing); resumed_at != paused_at {
		t.Errorf("paused at turn %d but resumed at %d", paused_at, resumed_at)
	}
	keyPresses <- 'q'
	waitFor(Quitting)
	collect(t, events)
	if err := <-result; err != nil {
		t.Fatal(err)
	}
}

func TestRunSendsAliveCellsCount(t *testing.T) {
	p := Params{WorldSize: 32, YearsToLive: 1 << 30, Threads: 2, Mode: Fast, Seed: 7}
	events := make(chan Event, 100)
	keyPresses := make(chan rune, 1)
	result := make(chan error, 1)
	go func() { result <- Run(p, events, keyPresses, WithAliveInterval(time.Millisecond)) }()

	timeout := time.After(10 * time.Second)
	for counted := false; !counted; {
		select {
		case event := <-events:
			if e, ok := event.(AliveCellsCount); ok {
				if e.CellsCount < 0 || e.CellsCount > p.WorldSize*p.WorldSize {
					t.Errorf("%d alive cells in a %dx%d world", e.CellsCount, p.WorldSize, p.WorldSize)
				}
				counted = true
			}
		case <-timeout:
			t.Fatal("no AliveCellsCount event")
		}
	}
	keyPresses <- 'q'
	collect(t, events)
	if err := <-result; err != nil {
		t.Fatal(err)
	}
}

func TestRunConfigError(t *testing.T) {
	events := make(chan Event)
	err := Run(Params{WorldSize: 4, YearsToLive: 1, Threads: 0}, events, nil)
	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("Run() = %v, want a *ConfigError", err)
	}
	if _, ok := <-events; ok {
		t.Error("events channel left open")
	}
}
