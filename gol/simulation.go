package gol

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// defaultAliveInterval is how often Run reports the number of live cells.
const defaultAliveInterval = 2 * time.Second

// Simulation owns the grid, the work counter and the generation counter of a
// single run. It is not safe for concurrent use; Step and Run must be called
// from one goroutine.
type Simulation struct {
	p          Params
	grid       *Grid
	counter    workCounter
	generation int
	reporter   Reporter
	renderer   Renderer

	aliveInterval time.Duration
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithReporter receives progress in VERBOSE mode.
func WithReporter(r Reporter) Option {
	return func(s *Simulation) {
		s.reporter = r
	}
}

// WithRenderer is called with the grid after every completed generation.
func WithRenderer(r Renderer) Option {
	return func(s *Simulation) {
		s.renderer = r
	}
}

// WithGrid starts from a prepared grid instead of a randomly seeded one. The
// grid's world size must match Params.WorldSize.
func WithGrid(g *Grid) Option {
	return func(s *Simulation) {
		s.grid = g
	}
}

// WithAliveInterval sets how often Run sends AliveCellsCount events.
// Non-positive intervals keep the default of two seconds.
func WithAliveInterval(d time.Duration) Option {
	return func(s *Simulation) {
		if d > 0 {
			s.aliveInterval = d
		}
	}
}

// NewSimulation checks p and prepares generation 0. A world size of 0 or less
// gives an empty world whose generations do no work.
func NewSimulation(p Params, opts ...Option) (*Simulation, error) {
	if err := p.validateEngine(); err != nil {
		return nil, err
	}
	if p.WorldSize < 0 {
		p.WorldSize = 0
	}
	s := &Simulation{p: p, aliveInterval: defaultAliveInterval}
	for _, opt := range opts {
		opt(s)
	}
	if s.grid == nil {
		s.grid = NewGrid(p.WorldSize)
		s.grid.SeedRandom(rand.New(rand.NewSource(p.Seed)))
	} else if s.grid.WorldSize() != p.WorldSize {
		return nil, &ConfigError{
			Field:  "worldSize",
			Value:  strconv.Itoa(p.WorldSize),
			Reason: fmt.Sprintf("does not match the supplied grid of size %d", s.grid.WorldSize()),
		}
	}
	return s, nil
}

// Params returns the parameters the simulation was created with.
func (s *Simulation) Params() Params {
	return s.p
}

// Grid returns the double-buffered grid. Its current buffer holds the latest
// completed generation.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Generation is the number of completed generations.
func (s *Simulation) Generation() int {
	return s.generation
}

// Done reports whether the configured lifetime has been reached.
func (s *Simulation) Done() bool {
	return s.generation >= s.p.YearsToLive
}

func (s *Simulation) verbose() bool {
	return s.p.Mode == Verbose && s.reporter != nil
}

// Run advances the simulation until YearsToLive generations have completed,
// ctx is cancelled or a worker fails.
func (s *Simulation) Run(ctx context.Context) error {
	for !s.Done() {
		if err := s.advance(ctx); err != nil {
			return err
		}
	}
	return nil
}

// advance runs one generation and hands the result to the renderer.
func (s *Simulation) advance(ctx context.Context) error {
	if err := s.Step(ctx); err != nil {
		return fmt.Errorf("generation %d: %w", s.generation, err)
	}
	if s.renderer != nil {
		if err := s.renderer.Render(s.generation, s.grid); err != nil {
			return fmt.Errorf("render generation %d: %w", s.generation, err)
		}
	}
	return nil
}
