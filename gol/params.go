package gol

import (
	"strconv"
	"strings"
)

// Mode selects whether progress is reported while the simulation runs.
type Mode uint8

const (
	Fast Mode = iota
	Verbose
)

func (m Mode) String() string {
	switch m {
	case Fast:
		return "FAST"
	case Verbose:
		return "VERBOSE"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode accepts FAST or VERBOSE in any letter case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "FAST":
		return Fast, nil
	case "VERBOSE":
		return Verbose, nil
	}
	return Fast, &ConfigError{Field: "mode", Value: s, Reason: "must be FAST or VERBOSE"}
}

// Params provides the details of how to run the Game of Life.
type Params struct {
	WorldSize   int   // Side length of the interior, border excluded
	YearsToLive int   // Number of generations to simulate
	Threads     int   // Number of workers per generation
	Mode        Mode  // Fast or Verbose
	Seed        int64 // Seed for the initial random state
}

// Validate checks the parameters a run is configured with. A run must have a
// non-empty world; the engine itself tolerates an empty one.
func (p Params) Validate() error {
	if p.WorldSize <= 0 {
		return &ConfigError{Field: "worldSize", Value: strconv.Itoa(p.WorldSize), Reason: "must be greater than 0"}
	}
	return p.validateEngine()
}

func (p Params) validateEngine() error {
	if p.YearsToLive < 0 {
		return &ConfigError{Field: "yearsToLive", Value: strconv.Itoa(p.YearsToLive), Reason: "must not be negative"}
	}
	if p.Threads <= 0 {
		return &ConfigError{Field: "threadCount", Value: strconv.Itoa(p.Threads), Reason: "must be greater than 0"}
	}
	if p.Mode != Fast && p.Mode != Verbose {
		return &ConfigError{Field: "mode", Value: p.Mode.String(), Reason: "must be FAST or VERBOSE"}
	}
	return nil
}
