package render

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/san-kum/automata/internal/automaton"
)

// Writer streams rows to an output, one line per generation, pausing for
// delay after each line.
type Writer struct {
	out      *bufio.Writer
	renderer *Renderer
	delay    time.Duration
}

func NewWriter(out io.Writer, renderer *Renderer, delay time.Duration) *Writer {
	return &Writer{out: bufio.NewWriter(out), renderer: renderer, delay: delay}
}

// WriteRow renders and flushes one row, then waits out the delay. A
// cancelled context cuts the wait short and is reported as its error.
func (w *Writer) WriteRow(ctx context.Context, row automaton.Row) error {
	if _, err := w.out.WriteString(w.renderer.Render(row.Cells)); err != nil {
		return err
	}
	if err := w.out.WriteByte('\n'); err != nil {
		return err
	}
	if err := w.out.Flush(); err != nil {
		return err
	}
	if w.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(w.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
