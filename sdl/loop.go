package sdl

import (
	"fmt"
	"time"

	"uk.ac.bris.cs/lifeworkers/gol"
)

const frameInterval = time.Second / 60

// Run presents frames and forwards key presses until events is closed, then
// destroys the window. onEvent is called for every event received. Must be
// called from the main OS thread.
func Run(w *Window, events <-chan gol.Event, keyPresses chan<- rune, onEvent func(gol.Event)) {
	defer w.Destroy()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				if err := w.Present(); err != nil {
					fmt.Println("sdl:", err)
				}
				return
			}
			onEvent(event)
		case <-ticker.C:
			if key := w.PollKey(); key != 0 {
				select {
				case keyPresses <- key:
				default:
				}
			}
			if err := w.Present(); err != nil {
				fmt.Println("sdl:", err)
			}
		}
	}
}
