package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"uk.ac.bris.cs/lifeworkers/gol"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Screen draws the grid in the terminal and reports key presses. The last
// line of the terminal is a status line.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	header string
	status string
}

// NewScreen takes over the terminal until Fini is called.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return newScreen(screen)
}

func newScreen(screen tcell.Screen) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()
	return &Screen{screen: screen, header: "generation 0"}, nil
}

// Render draws as much of the current buffer as fits above the status line.
func (s *Screen) Render(generation int, g *gol.Grid) error {
	world := g.Current()
	s.mu.Lock()
	defer s.mu.Unlock()
	width, height := s.screen.Size()
	for y := 0; y < len(world) && y < height-1; y++ {
		for x := 0; x < len(world[y]) && x < width; x++ {
			if world[y][x] {
				s.screen.SetContent(x, y, '+', nil, aliveStyle)
			} else {
				s.screen.SetContent(x, y, '.', nil, deadStyle)
			}
		}
	}
	s.header = fmt.Sprintf("generation %d", generation)
	s.drawStatus()
	s.screen.Show()
	return nil
}

// Status replaces the text after the generation number on the status line.
func (s *Screen) Status(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = text
	s.drawStatus()
	s.screen.Show()
}

// drawStatus must be called with s.mu held.
func (s *Screen) drawStatus() {
	width, height := s.screen.Size()
	if height == 0 {
		return
	}
	line := []rune(s.header + " | " + s.status)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		s.screen.SetContent(x, height-1, r, nil, statusStyle)
	}
}

// Listen forwards 'p' and 'q' (Escape and Ctrl-C mean 'q') to keyPresses
// until Fini is called. Presses are dropped when keyPresses is full.
func (s *Screen) Listen(keyPresses chan<- rune) {
	for {
		event := s.screen.PollEvent()
		switch e := event.(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			var key rune
			switch e.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				key = 'q'
			case tcell.KeyRune:
				key = e.Rune()
			}
			if key != 'p' && key != 'q' {
				continue
			}
			select {
			case keyPresses <- key:
			default:
			}
		}
	}
}

// Fini gives the terminal back.
func (s *Screen) Fini() {
	s.screen.Fini()
}
