package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"uk.ac.bris.cs/lifeworkers/gol"
	"uk.ac.bris.cs/lifeworkers/sdl"
	"uk.ac.bris.cs/lifeworkers/term"
	"uk.ac.bris.cs/lifeworkers/util"
)

const usage = `usage: lifeworkers [flags] <worldSize> <yearsToLive> <threadCount> <FAST|VERBOSE>
example: lifeworkers 10000 100 10 FAST

flags:
  -seed int     seed for the initial random state (default: current time)
  -vis string   viewer: none, sdl or term (default "none")
  -print        print the final world with '+' and '.'
`

const (
	visNone = "none"
	visSDL  = "sdl"
	visTerm = "term"
)

type config struct {
	params gol.Params
	vis    string
	print  bool

	// aliveInterval overrides how often the live cell count is sent; zero
	// keeps the default
	aliveInterval time.Duration
}

// loadConfig reads flags followed by the four positional arguments.
func loadConfig(args []string) (config, error) {
	flags := flag.NewFlagSet("lifeworkers", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	seed := flags.Int64("seed", time.Now().UnixNano(), "")
	vis := flags.String("vis", visNone, "")
	printWorld := flags.Bool("print", false, "")
	if err := flags.Parse(args); err != nil {
		return config{}, &gol.ConfigError{Field: "flags", Reason: err.Error()}
	}

	rest := flags.Args()
	if len(rest) != 4 {
		return config{}, &gol.ConfigError{
			Field:  "arguments",
			Value:  strings.Join(rest, " "),
			Reason: "expected worldSize yearsToLive threadCount mode",
		}
	}
	names := []string{"worldSize", "yearsToLive", "threadCount"}
	numbers := make([]int, len(names))
	for i, name := range names {
		n, err := strconv.Atoi(rest[i])
		if err != nil {
			return config{}, &gol.ConfigError{Field: name, Value: rest[i], Reason: "not an integer"}
		}
		numbers[i] = n
	}
	mode, err := gol.ParseMode(rest[3])
	if err != nil {
		return config{}, err
	}

	p := gol.Params{
		WorldSize:   numbers[0],
		YearsToLive: numbers[1],
		Threads:     numbers[2],
		Mode:        mode,
		Seed:        *seed,
	}
	if err := p.Validate(); err != nil {
		return config{}, err
	}
	switch *vis {
	case visNone, visSDL, visTerm:
	default:
		return config{}, &gol.ConfigError{Field: "vis", Value: *vis, Reason: "must be none, sdl or term"}
	}
	return config{params: p, vis: *vis, print: *printWorld}, nil
}

func main() {
	// SDL must stay on the main OS thread
	runtime.LockOSThread()

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	os.Exit(run(cfg, os.Stdout, os.Stderr))
}

// run executes the simulation described by cfg and returns the exit code.
func run(cfg config, stdout, stderr io.Writer) int {
	events := make(chan gol.Event, 1000)
	keyPresses := make(chan rune, 10)
	result := make(chan error, 1)

	// Ctrl-C quits after the running generation is abandoned
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	done := make(chan struct{})
	defer func() {
		signal.Stop(interrupts)
		close(done)
	}()
	go forwardInterrupts(interrupts, keyPresses, done)

	var final gol.FinalTurnComplete
	record := func(event gol.Event) {
		if e, ok := event.(gol.FinalTurnComplete); ok {
			final = e
		}
	}
	report := func(event gol.Event) {
		record(event)
		printProgress(stdout, cfg.params.Mode, event)
	}

	start := time.Now()
	simulate := func(opts ...gol.Option) {
		opts = append(opts, gol.WithAliveInterval(cfg.aliveInterval))
		result <- gol.Run(cfg.params, events, keyPresses, opts...)
	}
	switch cfg.vis {
	case visSDL:
		window, err := sdl.NewWindow(int32(cfg.params.WorldSize + 2))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		go simulate(gol.WithRenderer(window))
		sdl.Run(window, events, keyPresses, report)
	case visTerm:
		screen, err := term.NewScreen()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		go screen.Listen(keyPresses)
		go simulate(gol.WithRenderer(screen))
		for event := range events {
			record(event)
			screen.Status(event.String())
		}
		screen.Fini()
	default:
		go simulate()
		for event := range events {
			report(event)
		}
	}
	err := <-result
	elapsed := time.Since(start)

	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if cfg.print && final.World != nil {
		if err := util.Visualise(stdout, final.World); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	fmt.Fprintln(stdout, "Initial parameters")
	fmt.Fprintln(stdout, "World size:", cfg.params.WorldSize)
	fmt.Fprintln(stdout, "Years to live:", cfg.params.YearsToLive)
	fmt.Fprintln(stdout, "Threads:", cfg.params.Threads)
	fmt.Fprintln(stdout, "Generations completed:", final.CompletedTurns)
	fmt.Fprintln(stdout, "Took:", elapsed.Milliseconds())
	return 0
}

// forwardInterrupts turns each interrupt into a 'q' key press until done is
// closed.
func forwardInterrupts(interrupts <-chan os.Signal, keyPresses chan<- rune, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-interrupts:
			select {
			case keyPresses <- 'q':
			default:
			}
		}
	}
}

// printProgress writes VERBOSE progress to the console. FAST runs print
// nothing until the summary.
func printProgress(w io.Writer, mode gol.Mode, event gol.Event) {
	if mode != gol.Verbose {
		return
	}
	switch event.(type) {
	case gol.RowComplete, gol.WorkerDone:
		fmt.Fprintf(w, "Generation %d: %v\n", event.GetCompletedTurns(), event)
	case gol.TurnComplete, gol.AliveCellsCount:
		fmt.Fprintln(w, event)
	}
}
