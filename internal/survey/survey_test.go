package survey

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/automata/internal/automaton"
)

func TestRunMatchesSequential(t *testing.T) {
	rules := []int{0, 30, 90, 126, 255}
	results, err := Run(context.Background(), rules, Config{Width: 31, Generations: 10, Workers: 2})
	require.NoError(t, err)
	require.Len(t, results, len(rules))

	for i, res := range results {
		assert.Equal(t, rules[i], res.Rule)

		grid, err := automaton.NewGrid(31, automaton.MustRuleTable(rules[i]))
		require.NoError(t, err)
		grid.Seed(15)
		s := automaton.NewStream(grid)
		var last automaton.Row
		for n := 0; n < 10; n++ {
			last = s.Next()
		}
		assert.Equal(t, float64(last.Population()), res.Metrics["population"], "rule %d", rules[i])
	}
}

func TestRuleZeroDiesOut(t *testing.T) {
	results, err := Run(context.Background(), []int{0}, Config{Width: 9, Generations: 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, results[0].Metrics["population"])
	assert.Equal(t, 1.0, results[0].Metrics["peak_population"])
}

func TestRunRejectsInvalidInput(t *testing.T) {
	_, err := Run(context.Background(), []int{300}, Config{Width: 9, Generations: 3})
	assert.ErrorIs(t, err, automaton.ErrInvalidRule)

	_, err = Run(context.Background(), []int{30}, Config{Width: 0, Generations: 3})
	assert.ErrorIs(t, err, automaton.ErrInvalidWidth)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, AllRules(), Config{Width: 64})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAllRules(t *testing.T) {
	rules := AllRules()
	assert.Len(t, rules, 256)
	assert.Equal(t, 255, rules[255])
}
