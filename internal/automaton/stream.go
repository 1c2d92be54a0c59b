package automaton

import "context"

// Row is one rendered generation.
type Row struct {
	Generation uint64
	Cells      []uint8
}

// Population counts live cells in the row.
func (r Row) Population() int {
	n := 0
	for _, c := range r.Cells {
		n += int(c)
	}
	return n
}

// Observer is notified of every row a Stream produces.
type Observer interface {
	OnRow(r Row)
}

// Stream pulls generations from a Grid one at a time. It never ends on its
// own; the caller decides when to stop asking.
type Stream struct {
	grid      *Grid
	observers []Observer
}

func NewStream(grid *Grid) *Stream {
	return &Stream{grid: grid, observers: make([]Observer, 0)}
}

func (s *Stream) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Grid exposes the underlying grid.
func (s *Stream) Grid() *Grid { return s.grid }

// Seed returns generation zero, the externally seeded previous row.
func (s *Stream) Seed() Row {
	r := Row{Generation: s.grid.Generation(), Cells: s.grid.PreviousRow()}
	s.notify(r)
	return r
}

// Next advances one generation and returns it.
func (s *Stream) Next() Row {
	s.grid.Advance()
	r := Row{Generation: s.grid.Generation() + 1, Cells: s.grid.RenderRow()}
	s.grid.Commit()
	s.notify(r)
	return r
}

func (s *Stream) notify(r Row) {
	for _, o := range s.observers {
		o.OnRow(r)
	}
}

// Run emits the seed row and then successive generations to fn until fn
// returns false, limit new generations have been produced (0 means no
// limit), or ctx is done.
func (s *Stream) Run(ctx context.Context, limit uint64, fn func(Row) bool) error {
	if !fn(s.Seed()) {
		return nil
	}
	for n := uint64(0); limit == 0 || n < limit; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !fn(s.Next()) {
			return nil
		}
	}
	return nil
}
