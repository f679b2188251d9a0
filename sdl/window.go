package sdl

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"uk.ac.bris.cs/lifeworkers/gol"
)

// Minimum side length of the window in screen pixels
const minWindowSize = 512

// Window shows the current generation, one texture pixel per cell. Render may
// be called from the simulation goroutine; everything touching SDL must run
// on the main OS thread.
type Window struct {
	Size     int32
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	mu     sync.Mutex
	pixels []byte // ARGB8888, written by Render
	frame  []byte // Copy uploaded by Present
	dirty  bool
}

// NewWindow opens a window for a grid of size×size cells, border included.
func NewWindow(size int32) (*Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size %d", size)
	}
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	scale := int32(1)
	if size < minWindowSize {
		scale = (minWindowSize + size - 1) / size
	}
	window, err := sdl.CreateWindow("Game of Life", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		size*scale, size*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	if err := renderer.SetLogicalSize(size, size); err != nil {
		_ = renderer.Destroy()
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("set logical size: %w", err)
	}
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, size, size)
	if err != nil {
		_ = renderer.Destroy()
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create texture: %w", err)
	}
	return &Window{
		Size:     size,
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]byte, size*size*4),
		frame:    make([]byte, size*size*4),
		dirty:    true,
	}, nil
}

// Render copies the current buffer of g into the pixel buffer. It never
// touches SDL.
func (w *Window) Render(generation int, g *gol.Grid) error {
	world := g.Current()
	if int32(len(world)) != w.Size {
		return fmt.Errorf("grid of size %d in window of size %d", len(world), w.Size)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	fillPixels(w.pixels, world)
	w.dirty = true
	return nil
}

// fillPixels writes white for alive and black for dead cells.
func fillPixels(pixels []byte, world [][]bool) {
	i := 0
	for _, row := range world {
		for _, alive := range row {
			var value byte
			if alive {
				value = 0xFF
			}
			pixels[i] = value
			pixels[i+1] = value
			pixels[i+2] = value
			pixels[i+3] = 0xFF
			i += 4
		}
	}
}

// Present uploads the latest rendered frame, if any, and shows it.
func (w *Window) Present() error {
	w.mu.Lock()
	if !w.dirty {
		w.mu.Unlock()
		return nil
	}
	copy(w.frame, w.pixels)
	w.dirty = false
	w.mu.Unlock()

	if err := w.texture.Update(nil, unsafe.Pointer(&w.frame[0]), int(w.Size*4)); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

// PollKey drains pending SDL events and returns the last key of interest:
// 'p', 'q', or 'q' when the window is closed. Zero means nothing happened.
func (w *Window) PollKey() rune {
	var key rune
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			key = 'q'
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_p:
				key = 'p'
			case sdl.K_q, sdl.K_ESCAPE:
				key = 'q'
			}
		}
	}
	return key
}

// Destroy releases the window and shuts SDL down.
func (w *Window) Destroy() {
	_ = w.texture.Destroy()
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}
