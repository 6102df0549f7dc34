package engine

import (
	"math/rand"
	"testing"

	poker "github.com/paulhankin/poker"
)

func cards(t *testing.T, tokens ...string) []Card {
	t.Helper()
	out, err := ParseCards(tokens)
	if err != nil {
		t.Fatalf("parse %v: %v", tokens, err)
	}
	return out
}

func rank(t *testing.T, tokens ...string) HandRank {
	t.Helper()
	r, err := Evaluate(cards(t, tokens...))
	if err != nil {
		t.Fatalf("evaluate %v: %v", tokens, err)
	}
	return r
}

func TestEvaluateCategories(t *testing.T) {
	cases := []struct {
		name string
		hand []string
		want Category
	}{
		{"high card", []string{"As", "Kd", "9h", "5c", "2s"}, HighCard},
		{"one pair", []string{"As", "Ad", "9h", "5c", "2s"}, OnePair},
		{"two pair", []string{"As", "Ad", "9h", "9c", "2s"}, TwoPair},
		{"trips", []string{"As", "Ad", "Ah", "9c", "2s"}, Trips},
		{"straight", []string{"9s", "8d", "7h", "6c", "5s"}, Straight},
		{"wheel", []string{"As", "2d", "3h", "4c", "5s"}, Straight},
		{"flush", []string{"As", "Ts", "8s", "5s", "2s"}, Flush},
		{"full house", []string{"As", "Ad", "Ah", "9c", "9s"}, FullHouse},
		{"quads", []string{"As", "Ad", "Ah", "Ac", "2s"}, Quads},
		{"straight flush", []string{"9s", "8s", "7s", "6s", "5s"}, StraightFlush},
		{"steel wheel", []string{"As", "2s", "3s", "4s", "5s"}, StraightFlush},
	}
	for _, tc := range cases {
		if got := rank(t, tc.hand...).Category(); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestWheelRanksBelowSixHigh(t *testing.T) {
	wheel := rank(t, "As", "2d", "3h", "4c", "5s")
	sixHigh := rank(t, "2d", "3h", "4c", "5s", "6d")
	if wheel >= sixHigh {
		t.Fatalf("wheel %x should rank below 6-high straight %x", wheel, sixHigh)
	}
}

func TestKickersBreakTies(t *testing.T) {
	// AA with K kicker beats AA with Q kicker.
	hi := rank(t, "As", "Ad", "Kh", "5c", "2s")
	lo := rank(t, "Ah", "Ac", "Qh", "5d", "2d")
	if hi <= lo {
		t.Fatalf("kickers ignored: %x vs %x", hi, lo)
	}
	// Identical ranks, different suits: exact tie.
	a := rank(t, "As", "Ad", "Kh", "5c", "2s")
	b := rank(t, "Ah", "Ac", "Ks", "5d", "2d")
	if a != b {
		t.Fatalf("suit leaked into rank: %x vs %x", a, b)
	}
}

func TestSevenCardPicksBestFive(t *testing.T) {
	// Board pairs up the hole ace and carries a flush.
	r := rank(t, "Ah", "Kh", "Qh", "Jh", "Th", "2c", "2d")
	if r.Category() != StraightFlush {
		t.Fatalf("royal missed: %v", r.Category())
	}
	// Two trips make a full house.
	r = rank(t, "As", "Ad", "Ah", "9c", "9s", "9d", "2c")
	if r.Category() != FullHouse {
		t.Fatalf("two trips should be a full house, got %v", r.Category())
	}
	// Six suited cards: best five of the suit.
	r = rank(t, "As", "Ks", "9s", "7s", "4s", "2s", "3d")
	if r.Category() != Flush {
		t.Fatalf("got %v", r.Category())
	}
}

func TestEvaluateOrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		deck := NewDeck()
		hand := append([]Card{}, Draw(rng, deck, 7)...)
		base, err := Evaluate(hand)
		if err != nil {
			t.Fatal(err)
		}
		for j := 0; j < 10; j++ {
			rng.Shuffle(len(hand), func(a, b int) { hand[a], hand[b] = hand[b], hand[a] })
			r, err := Evaluate(hand)
			if err != nil {
				t.Fatal(err)
			}
			if r != base {
				t.Fatalf("order changed result: %x vs %x for %v", r, base, hand)
			}
		}
	}
}

func TestEvaluateBadSize(t *testing.T) {
	if _, err := Evaluate(cards(t, "As", "Kd")); err == nil {
		t.Fatal("2 cards accepted")
	}
	if _, err := Evaluate(NewDeck()[:8]); err == nil {
		t.Fatal("8 cards accepted")
	}
}

// Cross-check hand comparisons against the paulhankin evaluator over
// random showdowns: both sides see the same 5-card board, so any
// disagreement in ordering is a bug in one of the two.
func TestEvaluateAgreesWithLibrary(t *testing.T) {
	toLib := func(cs []Card) []poker.Card {
		out := make([]poker.Card, len(cs))
		for i, c := range cs {
			var s poker.Suit
			switch c.Suit {
			case 'c':
				s = poker.Club
			case 'd':
				s = poker.Diamond
			case 'h':
				s = poker.Heart
			default:
				s = poker.Spade
			}
			r := poker.Rank(c.Rank)
			if c.Rank == 14 {
				r = poker.Rank(1)
			}
			out[i], _ = poker.MakeCard(s, r)
		}
		return out
	}
	lib7 := func(cs []Card) int16 {
		var a [7]poker.Card
		copy(a[:], toLib(cs))
		return poker.Eval7(&a)
	}

	rng := rand.New(rand.NewSource(404))
	for i := 0; i < 2000; i++ {
		deck := NewDeck()
		dealt := Draw(rng, deck, 9)
		hero := append(append([]Card{}, dealt[0:2]...), dealt[4:9]...)
		villain := append(append([]Card{}, dealt[2:4]...), dealt[4:9]...)

		mineH, err := Evaluate(hero)
		if err != nil {
			t.Fatal(err)
		}
		mineV, err := Evaluate(villain)
		if err != nil {
			t.Fatal(err)
		}
		libH, libV := lib7(hero), lib7(villain)

		mine := compareInts(int64(mineH), int64(mineV))
		lib := compareInts(int64(libH), int64(libV))
		if mine != lib {
			t.Fatalf("disagree on %v vs %v: mine %d lib %d", hero, villain, mine, lib)
		}
	}
}

func compareInts(a, b int64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}
