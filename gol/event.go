package gol

import (
	"fmt"

	"uk.ac.bris.cs/lifeworkers/util"
)

// Event represents any Game of Life event that needs to be communicated to
// the user.
type Event interface {
	fmt.Stringer
	GetCompletedTurns() int
}

// State represents a change in the state of execution.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

func (s State) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent when the simulation starts, pauses, resumes or quits.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// RowComplete is sent in VERBOSE mode every time a worker finishes a row.
// CompletedTurns is the number of generations finished before this one.
type RowComplete struct {
	CompletedTurns int
	Worker         int
	Row            int
}

// WorkerDone is sent in VERBOSE mode when a worker finds no more rows.
type WorkerDone struct {
	CompletedTurns int
	Worker         int
}

// TurnComplete is sent in VERBOSE mode after the barrier and buffer swap.
type TurnComplete struct {
	CompletedTurns int
}

// AliveCellsCount is sent every 2 seconds (see WithAliveInterval) while the
// simulation runs.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// FinalTurnComplete is sent once the simulation stops. World is the final
// current buffer, border included; no worker touches it afterwards.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
	World          [][]bool
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event RowComplete) String() string {
	return fmt.Sprintf("Worker %d finished row %d", event.Worker, event.Row)
}

func (event RowComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event WorkerDone) String() string {
	return fmt.Sprintf("Worker %d finished its work", event.Worker)
}

func (event WorkerDone) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return fmt.Sprintf("All workers finished. Generation: %d", event.CompletedTurns)
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %d", event.CellsCount)
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final turn %d, %d alive cells", event.CompletedTurns, len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
