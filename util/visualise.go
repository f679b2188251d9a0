package util

import (
	"bufio"
	"io"
)

const (
	aliveRune = '+'
	deadRune  = '.'
)

// Visualise writes the world to w, one line per row, '+' for alive and '.'
// for dead cells. The frozen border is printed as well.
func Visualise(w io.Writer, world [][]bool) error {
	out := bufio.NewWriter(w)
	_, _ = out.WriteString("----------\n")
	for _, row := range world {
		for _, alive := range row {
			if alive {
				_ = out.WriteByte(aliveRune)
			} else {
				_ = out.WriteByte(deadRune)
			}
		}
		_ = out.WriteByte('\n')
	}
	return out.Flush()
}
