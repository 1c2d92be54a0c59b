// Package automaton implements a one-dimensional elementary cellular
// automaton with a bounded, double-buffered row store.
//
// The package is built from three pieces:
//
//   - [RuleTable]: the next-state lookup derived from a Wolfram rule number
//   - [Grid]: two bit-packed rows (previous and current) and the transition
//   - [Stream]: a pull-based, unbounded sequence of generations
//
// # Example
//
//	rule, _ := automaton.NewRuleTable(126)
//	grid, _ := automaton.NewGrid(80, rule)
//	grid.Seed(grid.Width() / 2)
//	for {
//		grid.Advance()
//		fmt.Println(grid.RenderRow())
//		grid.Commit()
//	}
//
// # Boundaries
//
// Cells outside [0, width) are permanently dead. Reads out of range return 0
// and writes out of range are ignored, so the edge cells evolve against an
// infinite dead region rather than wrapping.
//
// # Thread Safety
//
// A Grid is owned by a single goroutine. Independent simulations must each
// construct their own Grid.
package automaton
