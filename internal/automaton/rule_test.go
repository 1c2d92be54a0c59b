package automaton

import (
	"errors"
	"testing"
)

func TestRuleTableMatchesRuleBits(t *testing.T) {
	for r := 0; r <= 255; r++ {
		table, err := NewRuleTable(r)
		if err != nil {
			t.Fatalf("rule %d: unexpected error: %v", r, err)
		}
		for p := 0; p < Patterns; p++ {
			got, err := table.NextState(p)
			if err != nil {
				t.Fatalf("rule %d pattern %d: unexpected error: %v", r, p, err)
			}
			if want := uint8((r >> p) & 1); got != want {
				t.Errorf("rule %d pattern %d: expected %d, got %d", r, p, want, got)
			}
		}
	}
}

func TestRuleTable126(t *testing.T) {
	table := MustRuleTable(126)
	want := [Patterns]uint8{0, 1, 1, 1, 1, 1, 1, 0}
	for p, w := range want {
		got, _ := table.NextState(p)
		if got != w {
			t.Errorf("pattern %03b: expected %d, got %d", p, w, got)
		}
	}
	if table.Number() != 126 {
		t.Errorf("expected number 126, got %d", table.Number())
	}
	if s := table.String(); s != "rule 126 (01111110)" {
		t.Errorf("unexpected string %q", s)
	}
}

func TestRuleTableInvalidRule(t *testing.T) {
	for _, r := range []int{-1, 256, 1000, -255} {
		if _, err := NewRuleTable(r); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("rule %d: expected ErrInvalidRule, got %v", r, err)
		}
	}
}

func TestRuleTableInvalidPattern(t *testing.T) {
	table := MustRuleTable(255)
	for _, p := range []int{-1, 8, 42} {
		if _, err := table.NextState(p); !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("pattern %d: expected ErrInvalidPattern, got %v", p, err)
		}
	}
}

func TestMustRuleTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for rule 300")
		}
	}()
	MustRuleTable(300)
}
