package metrics

import "github.com/san-kum/automata/internal/automaton"

// Activity is the mean fraction of cells that flip between consecutive rows.
// Only the last row is retained.
type Activity struct {
	name    string
	last    []uint8
	sum     float64
	samples int
}

func NewActivity() *Activity {
	return &Activity{name: "activity"}
}

func (a *Activity) Name() string { return a.name }

func (a *Activity) Observe(r automaton.Row) {
	if a.last != nil && len(a.last) == len(r.Cells) && len(r.Cells) > 0 {
		changed := 0
		for i, c := range r.Cells {
			if c != a.last[i] {
				changed++
			}
		}
		a.sum += float64(changed) / float64(len(r.Cells))
		a.samples++
	}
	if cap(a.last) < len(r.Cells) {
		a.last = make([]uint8, len(r.Cells))
	}
	a.last = a.last[:len(r.Cells)]
	copy(a.last, r.Cells)
}

func (a *Activity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *Activity) Reset() {
	a.last = nil
	a.sum = 0
	a.samples = 0
}
