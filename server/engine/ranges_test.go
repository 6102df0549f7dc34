package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPercentileTableComplete(t *testing.T) {
	if len(handPercentile) != 169 {
		t.Fatalf("table has %d classes, want 169", len(handPercentile))
	}
	for class, pct := range handPercentile {
		if pct < 0 || pct > 1 {
			t.Fatalf("%s percentile %f out of range", class, pct)
		}
	}
}

func TestClassCombos(t *testing.T) {
	if n := len(classCombos("AA")); n != 6 {
		t.Fatalf("pair combos %d, want 6", n)
	}
	if n := len(classCombos("AKs")); n != 4 {
		t.Fatalf("suited combos %d, want 4", n)
	}
	if n := len(classCombos("AKo")); n != 12 {
		t.Fatalf("offsuit combos %d, want 12", n)
	}
}

func TestRandomRangeCoversDeck(t *testing.T) {
	r, err := RangeByName("random")
	if err != nil {
		t.Fatal(err)
	}
	// 169 classes expand to all C(52,2)=1326 combos.
	if r.Size() != 1326 {
		t.Fatalf("random range has %d combos, want 1326", r.Size())
	}
}

func TestTighterRangesAreSmaller(t *testing.T) {
	sizes := map[string]int{}
	for _, name := range []string{"random", "loose", "balanced", "tight"} {
		r, err := RangeByName(name)
		if err != nil {
			t.Fatal(err)
		}
		sizes[name] = r.Size()
	}
	if !(sizes["tight"] < sizes["balanced"] && sizes["balanced"] < sizes["loose"] && sizes["loose"] < sizes["random"]) {
		t.Fatalf("range sizes not strictly narrowing: %v", sizes)
	}
}

func TestUnknownRange(t *testing.T) {
	if _, err := RangeByName("maniac"); !errors.Is(err, ErrUnknownRange) {
		t.Fatalf("want ErrUnknownRange, got %v", err)
	}
}

func TestSampleRespectsDeadCards(t *testing.T) {
	r, err := RangeByName("tight")
	if err != nil {
		t.Fatal(err)
	}
	dead := cards(t, "As", "Ah", "Ad", "Kc", "Kd", "Qh", "Qs")
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		hand, ok := r.Sample(rng, dead)
		if !ok {
			t.Fatal("tight range reported fully blocked")
		}
		for _, d := range dead {
			if hand[0] == d || hand[1] == d {
				t.Fatalf("sampled dead card %s in %v", d, hand)
			}
		}
	}
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		hand string
		want string
	}{
		{"AsKs", "AKs"},
		{"KsAd", "AKo"},
		{"7d7c", "77"},
		{"2c7d", "72o"},
	}
	for _, tc := range cases {
		h, err := ParseHand(tc.hand)
		if err != nil {
			t.Fatal(err)
		}
		if got := ClassOf(h); got != tc.want {
			t.Errorf("ClassOf(%s) = %s, want %s", tc.hand, got, tc.want)
		}
	}
	if Percentile([2]Card{{14, 's'}, {14, 'h'}}) != 1.0 {
		t.Fatal("AA should be percentile 1.0")
	}
}
