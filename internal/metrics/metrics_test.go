package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/automata/internal/automaton"
)

func row(gen uint64, cells ...uint8) automaton.Row {
	return automaton.Row{Generation: gen, Cells: cells}
}

func TestPopulation(t *testing.T) {
	m := NewPopulation()
	m.Observe(row(0, 0, 1, 1, 0))
	if m.Value() != 2 {
		t.Errorf("expected population 2, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestPeak(t *testing.T) {
	m := NewPeak()
	m.Observe(row(0, 1, 0, 0))
	m.Observe(row(1, 1, 1, 1))
	m.Observe(row(2, 0, 1, 0))
	if m.Value() != 3 {
		t.Errorf("expected peak 3, got %f", m.Value())
	}
}

func TestDensity(t *testing.T) {
	m := NewDensity()
	m.Observe(row(0, 1, 0, 0, 0))
	m.Observe(row(1, 1, 1, 1, 1))
	if math.Abs(m.Value()-0.625) > 1e-9 {
		t.Errorf("expected density 0.625, got %f", m.Value())
	}
	m.Observe(row(2))
	if math.Abs(m.Value()-0.625) > 1e-9 {
		t.Error("empty rows should be ignored")
	}
}

func TestActivity(t *testing.T) {
	m := NewActivity()
	m.Observe(row(0, 0, 0, 1, 0))
	if m.Value() != 0 {
		t.Errorf("first row has nothing to compare with, got %f", m.Value())
	}
	m.Observe(row(1, 0, 1, 1, 1))
	if math.Abs(m.Value()-0.5) > 1e-9 {
		t.Errorf("expected activity 0.5, got %f", m.Value())
	}
	m.Observe(row(2, 0, 1, 1, 1))
	if math.Abs(m.Value()-0.25) > 1e-9 {
		t.Errorf("expected activity 0.25, got %f", m.Value())
	}
}

func TestActivityDoesNotAliasRow(t *testing.T) {
	m := NewActivity()
	cells := []uint8{0, 1, 0}
	m.Observe(row(0, cells...))
	cells[0] = 1
	m.Observe(row(1, 0, 1, 0))
	if m.Value() != 0 {
		t.Errorf("activity should compare against a copy, got %f", m.Value())
	}
}

func TestRecorderOnStream(t *testing.T) {
	grid, err := automaton.NewGrid(7, automaton.MustRuleTable(126))
	if err != nil {
		t.Fatal(err)
	}
	grid.Seed(3)
	s := automaton.NewStream(grid)

	rec := NewRecorder(Default()...)
	series := NewSeries(4)
	s.AddObserver(rec)
	s.AddObserver(series)

	s.Seed()
	s.Next()
	s.Next()
	s.Next()

	want := []float64{1, 3, 4, 7}
	for i, w := range want {
		if series.Populations[i] != w {
			t.Errorf("generation %d: expected population %f, got %f", i, w, series.Populations[i])
		}
	}

	values := rec.Values()
	if values["population"] != 7 {
		t.Errorf("expected final population 7, got %f", values["population"])
	}
	if values["peak_population"] != 7 {
		t.Errorf("expected peak 7, got %f", values["peak_population"])
	}
	if len(values) != 4 {
		t.Errorf("expected 4 metrics, got %d", len(values))
	}

	rec.Reset()
	if rec.Values()["population"] != 0 {
		t.Error("expected reset population")
	}
}
