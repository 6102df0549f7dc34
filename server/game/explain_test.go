package game

import (
	"strings"
	"testing"
)

func TestExplainPerStreet(t *testing.T) {
	for _, c := range []struct {
		street Street
		want   string
	}{
		{Preflop, "No community cards"},
		{Flop, "Two cards to come"},
		{Turn, "One card to come"},
		{River, "All cards dealt"},
	} {
		lines := Explain(Question{Street: c.street})
		if len(lines) < 2 {
			t.Fatalf("%s: %d lines", c.street, len(lines))
		}
		if !strings.Contains(lines[0], c.want) {
			t.Errorf("%s: first line %q", c.street, lines[0])
		}
	}
}

func TestExplainRiverDescribesHands(t *testing.T) {
	q := Question{
		Street:  River,
		Hero:    "AhKh",
		Villain: "QsQd",
		Board:   []string{"Kd", "7c", "2s", "9h", "3c"},
	}
	lines := Explain(q)
	var hero, villain bool
	for _, l := range lines {
		if strings.HasPrefix(l, "Hero makes ") {
			hero = true
		}
		if strings.HasPrefix(l, "Villain makes ") {
			villain = true
		}
	}
	if !hero || !villain {
		t.Fatalf("missing hand descriptions: %v", lines)
	}
}

func TestExplainRiverRangeVillain(t *testing.T) {
	q := Question{
		Street:  River,
		Villain: "tight",
		Hero:    "AhKh",
		Board:   []string{"Kd", "7c", "2s", "9h", "3c"},
	}
	for _, l := range Explain(q) {
		if strings.HasPrefix(l, "Villain makes ") {
			t.Fatalf("described a range villain: %q", l)
		}
	}
}
