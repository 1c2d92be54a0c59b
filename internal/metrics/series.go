package metrics

import "github.com/san-kum/automata/internal/automaton"

// Series records the population of every row for plotting. Unlike the other
// metrics it grows with the run, so callers bound it with a generation limit.
type Series struct {
	Generations []uint64
	Populations []float64
}

func NewSeries(capacity int) *Series {
	return &Series{
		Generations: make([]uint64, 0, capacity),
		Populations: make([]float64, 0, capacity),
	}
}

func (s *Series) OnRow(r automaton.Row) {
	s.Generations = append(s.Generations, r.Generation)
	s.Populations = append(s.Populations, float64(r.Population()))
}

func (s *Series) Len() int { return len(s.Populations) }
