package automaton_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/automata/internal/automaton"
)

type rowRecorder struct {
	rows []automaton.Row
}

func (r *rowRecorder) OnRow(row automaton.Row) { r.rows = append(r.rows, row) }

func newStream(width, rule int) *automaton.Stream {
	grid, err := automaton.NewGrid(width, automaton.MustRuleTable(rule))
	Expect(err).NotTo(HaveOccurred())
	grid.Seed(width / 2)
	return automaton.NewStream(grid)
}

var _ = Describe("Stream", func() {
	It("starts with the seed row as generation zero", func() {
		s := newStream(7, 126)
		seed := s.Seed()
		Expect(seed.Generation).To(BeZero())
		Expect(seed.Cells).To(Equal([]uint8{0, 0, 0, 1, 0, 0, 0}))
	})

	It("produces the rule 126 triangle", func() {
		s := newStream(7, 126)
		Expect(s.Next().Cells).To(Equal([]uint8{0, 0, 1, 1, 1, 0, 0}))
		Expect(s.Next().Cells).To(Equal([]uint8{0, 1, 1, 0, 1, 1, 0}))
		third := s.Next()
		Expect(third.Generation).To(Equal(uint64(3)))
		Expect(third.Cells).To(Equal([]uint8{1, 1, 1, 1, 1, 1, 1}))
	})

	It("leaves the current row clear between generations", func() {
		s := newStream(9, 30)
		s.Next()
		Expect(s.Grid().Population(automaton.Current)).To(BeZero())
		Expect(s.Grid().RenderRow()).To(HaveEach(uint8(0)))
	})

	It("is deterministic across independent grids", func() {
		for _, rule := range []int{30, 90, 110, 126, 150} {
			a, b := newStream(64, rule), newStream(64, rule)
			for i := 0; i < 200; i++ {
				Expect(a.Next()).To(Equal(b.Next()), "rule %d generation %d", rule, i+1)
			}
		}
	})

	It("notifies observers of every row", func() {
		s := newStream(11, 90)
		rec := &rowRecorder{}
		s.AddObserver(rec)
		s.Seed()
		s.Next()
		s.Next()
		Expect(rec.rows).To(HaveLen(3))
		Expect(rec.rows[2].Generation).To(Equal(uint64(2)))
	})

	Describe("Run", func() {
		It("stops after the generation limit", func() {
			s := newStream(15, 110)
			var gens []uint64
			err := s.Run(context.Background(), 4, func(r automaton.Row) bool {
				gens = append(gens, r.Generation)
				return true
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(gens).To(Equal([]uint64{0, 1, 2, 3, 4}))
		})

		It("stops when the callback declines", func() {
			s := newStream(15, 110)
			count := 0
			err := s.Run(context.Background(), 0, func(r automaton.Row) bool {
				count++
				return r.Generation < 9
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(10))
			Expect(s.Grid().Generation()).To(Equal(uint64(9)))
		})

		It("returns the context error on cancellation", func() {
			s := newStream(15, 110)
			ctx, cancel := context.WithCancel(context.Background())
			err := s.Run(ctx, 0, func(r automaton.Row) bool {
				if r.Generation == 5 {
					cancel()
				}
				return true
			})
			Expect(err).To(MatchError(context.Canceled))
			Expect(s.Grid().Generation()).To(Equal(uint64(5)))
		})
	})

	It("counts population per row", func() {
		row := automaton.Row{Cells: []uint8{1, 0, 1, 1}}
		Expect(row.Population()).To(Equal(3))
	})
})
