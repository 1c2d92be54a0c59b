package metrics

import "github.com/san-kum/automata/internal/automaton"

// Metric summarises the rows of a run.
type Metric interface {
	Name() string
	Observe(r automaton.Row)
	Value() float64
	Reset()
}

// Recorder fans rows out to a set of metrics and can be attached to a
// stream as an observer.
type Recorder struct {
	metrics []Metric
}

func NewRecorder(ms ...Metric) *Recorder {
	return &Recorder{metrics: ms}
}

// Default returns the metrics reported by the stats command.
func Default() []Metric {
	return []Metric{
		NewPopulation(),
		NewDensity(),
		NewActivity(),
		NewPeak(),
	}
}

func (r *Recorder) OnRow(row automaton.Row) {
	for _, m := range r.metrics {
		m.Observe(row)
	}
}

func (r *Recorder) Values() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (r *Recorder) Reset() {
	for _, m := range r.metrics {
		m.Reset()
	}
}
