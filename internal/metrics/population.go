package metrics

import "github.com/san-kum/automata/internal/automaton"

// Population is the live cell count of the most recent row.
type Population struct {
	name  string
	count int
}

func NewPopulation() *Population {
	return &Population{name: "population"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) Observe(r automaton.Row) { p.count = r.Population() }

func (p *Population) Value() float64 { return float64(p.count) }

func (p *Population) Reset() { p.count = 0 }

// Peak is the largest population seen.
type Peak struct {
	name string
	max  int
}

func NewPeak() *Peak {
	return &Peak{name: "peak_population"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(r automaton.Row) {
	if n := r.Population(); n > p.max {
		p.max = n
	}
}

func (p *Peak) Value() float64 { return float64(p.max) }

func (p *Peak) Reset() { p.max = 0 }

// Density is the mean fraction of live cells per row.
type Density struct {
	name    string
	sum     float64
	samples int
}

func NewDensity() *Density {
	return &Density{name: "density"}
}

func (d *Density) Name() string { return d.name }

func (d *Density) Observe(r automaton.Row) {
	if len(r.Cells) == 0 {
		return
	}
	d.sum += float64(r.Population()) / float64(len(r.Cells))
	d.samples++
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.sum / float64(d.samples)
}

func (d *Density) Reset() {
	d.sum = 0
	d.samples = 0
}
