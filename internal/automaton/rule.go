package automaton

import "fmt"

// Patterns is the number of distinct three-cell neighborhoods.
const Patterns = 8

// RuleTable maps a neighborhood pattern (left<<2 | center<<1 | right) to the
// center cell's next state. It is immutable after construction.
type RuleTable struct {
	number uint8
	next   [Patterns]uint8
}

// NewRuleTable derives the lookup for a Wolfram rule number: bit p of the
// rule is the next state for pattern p.
func NewRuleTable(rule int) (RuleTable, error) {
	if rule < 0 || rule > 255 {
		return RuleTable{}, fmt.Errorf("%w: got %d", ErrInvalidRule, rule)
	}
	t := RuleTable{number: uint8(rule)}
	for p := 0; p < Patterns; p++ {
		t.next[p] = uint8(rule>>p) & 1
	}
	return t, nil
}

// MustRuleTable is NewRuleTable for rule numbers known to be valid.
func MustRuleTable(rule int) RuleTable {
	t, err := NewRuleTable(rule)
	if err != nil {
		panic(err)
	}
	return t
}

// NextState returns 0 or 1 for the given pattern.
func (t RuleTable) NextState(pattern int) (uint8, error) {
	if pattern < 0 || pattern >= Patterns {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPattern, pattern)
	}
	return t.next[pattern], nil
}

// lookup skips the range check; callers build pattern from three bits.
func (t RuleTable) lookup(pattern int) uint8 {
	return t.next[pattern&(Patterns-1)]
}

// Number returns the rule number the table was built from.
func (t RuleTable) Number() uint8 { return t.number }

func (t RuleTable) String() string {
	return fmt.Sprintf("rule %d (%08b)", t.number, t.number)
}
