// Package viz provides the interactive terminal view for a running automaton.
//
// The view is a Bubble Tea program that scrolls one line per generation and
// keeps only as many rendered lines as fit on screen.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	R     - Reseed and restart
//	+/-   - Next/previous rule number
//	T     - Cycle color themes
//	Q     - Quit
package viz
