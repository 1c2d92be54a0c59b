package automaton

import "errors"

// Construction errors. Nothing in the engine fails once a Grid exists.
var (
	// ErrInvalidWidth indicates a grid width that is not a positive integer.
	ErrInvalidWidth = errors.New("automaton: width must be a positive integer")

	// ErrInvalidRule indicates a rule number outside [0, 255].
	ErrInvalidRule = errors.New("automaton: rule must be in [0, 255]")

	// ErrInvalidPattern indicates a neighborhood pattern outside [0, 7].
	ErrInvalidPattern = errors.New("automaton: neighborhood pattern must be in [0, 7]")
)
