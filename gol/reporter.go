package gol

// Reporter receives progress while a simulation runs in VERBOSE mode. It is
// never called in FAST mode. RowComplete and WorkerDone are called from
// worker goroutines concurrently.
type Reporter interface {
	RowComplete(generation, worker, row int)
	WorkerDone(generation, worker int)
	GenerationComplete(generation int)
}

// Renderer draws the current buffer after a completed generation. It is
// called between barriers, so no worker is running while it reads the grid.
type Renderer interface {
	Render(generation int, g *Grid) error
}

// EventReporter forwards progress to an events channel.
type EventReporter struct {
	Events chan<- Event
}

func (r EventReporter) RowComplete(generation, worker, row int) {
	r.Events <- RowComplete{CompletedTurns: generation, Worker: worker, Row: row}
}

func (r EventReporter) WorkerDone(generation, worker int) {
	r.Events <- WorkerDone{CompletedTurns: generation, Worker: worker}
}

func (r EventReporter) GenerationComplete(generation int) {
	r.Events <- TurnComplete{CompletedTurns: generation}
}
