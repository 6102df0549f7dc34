package equity

import (
	"testing"

	"equity-trainer/server/engine"
)

func opp(h [2]Card) Opponent { return Opponent{Hand: &h} }

func TestCanonicalKeySuitRelabel(t *testing.T) {
	// Same scenario with spades<->hearts and diamonds<->clubs swapped.
	k1 := CanonicalKey(hand(t, "AsKd"), opp(hand(t, "QcJc")), board(t, "Ah", "Ts", "2c"))
	k2 := CanonicalKey(hand(t, "AhKc"), opp(hand(t, "QdJd")), board(t, "As", "Th", "2d"))
	if k1 != k2 {
		t.Fatalf("suit relabeling changed key:\n%s\n%s", k1, k2)
	}
}

func TestCanonicalKeyOrderInsensitive(t *testing.T) {
	k1 := CanonicalKey(hand(t, "AsKd"), opp(hand(t, "QcJc")), board(t, "Ah", "Ts", "2c"))
	k2 := CanonicalKey(hand(t, "KdAs"), opp(hand(t, "JcQc")), board(t, "2c", "Ah", "Ts"))
	if k1 != k2 {
		t.Fatalf("card order changed key:\n%s\n%s", k1, k2)
	}
}

func TestCanonicalKeyDistinguishesSuitStructure(t *testing.T) {
	// Suited vs offsuit hero is a different strategic class.
	suited := CanonicalKey(hand(t, "AsKs"), opp(hand(t, "QdQh")), board(t, "2c", "7d", "Jh"))
	offsuit := CanonicalKey(hand(t, "AsKd"), opp(hand(t, "QdQh")), board(t, "2c", "7d", "Jh"))
	if suited == offsuit {
		t.Fatal("suitedness collapsed into one key")
	}
	// Hero and villain perspectives must not collide.
	hv := CanonicalKey(hand(t, "AsKs"), opp(hand(t, "QdQh")), board(t, "2c", "7d", "Jh"))
	vh := CanonicalKey(hand(t, "QdQh"), opp(hand(t, "AsKs")), board(t, "2c", "7d", "Jh"))
	if hv == vh {
		t.Fatal("perspective swap collapsed into one key")
	}
}

func TestCanonicalKeyRangeOpponent(t *testing.T) {
	tight, err := engine.RangeByName("tight")
	if err != nil {
		t.Fatal(err)
	}
	loose, err := engine.RangeByName("loose")
	if err != nil {
		t.Fatal(err)
	}
	k1 := CanonicalKey(hand(t, "AsKs"), Opponent{Range: tight}, nil)
	k2 := CanonicalKey(hand(t, "AhKh"), Opponent{Range: tight}, nil)
	k3 := CanonicalKey(hand(t, "AsKs"), Opponent{Range: loose}, nil)
	if k1 != k2 {
		t.Fatalf("isomorphic hero vs same range got different keys:\n%s\n%s", k1, k2)
	}
	if k1 == k3 {
		t.Fatal("different archetypes share a key")
	}
}

// Key equivalence must mean equity equivalence: exact results for
// suit-relabeled scenarios are identical.
func TestCanonicalKeyPreservesEquity(t *testing.T) {
	h1, v1, b1 := hand(t, "AsKd"), hand(t, "QcJc"), board(t, "Ah", "Ts", "2c")
	h2, v2, b2 := hand(t, "AhKc"), hand(t, "QdJd"), board(t, "As", "Th", "2d")
	if CanonicalKey(h1, opp(v1), b1) != CanonicalKey(h2, opp(v2), b2) {
		t.Fatal("scenarios expected to share a key")
	}
	r1, err := ExactVsHand(h1, v1, b1)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := ExactVsHand(h2, v2, b2)
	if err != nil {
		t.Fatal(err)
	}
	if r1 != r2 {
		t.Fatalf("shared key but different equity: %+v vs %+v", r1, r2)
	}
}
