package equity

import (
	"sort"
	"strings"

	"equity-trainer/server/engine"
)

// Suit isomorphism: equity only depends on which cards share a suit, not
// on which suit that is. CanonicalKey therefore encodes the scenario
// under all 24 suit relabelings and keeps the lexicographically smallest
// encoding. Any two scenarios that differ only by a suit permutation map
// to the same key; the equity tests verify the equivalence empirically.

var suitPerms = buildSuitPerms()

func buildSuitPerms() [][4]byte {
	var perms [][4]byte
	s := []byte(engine.Suits)
	var rec func(k int)
	rec = func(k int) {
		if k == 4 {
			var p [4]byte
			copy(p[:], s)
			perms = append(perms, p)
			return
		}
		for i := k; i < 4; i++ {
			s[k], s[i] = s[i], s[k]
			rec(k + 1)
			s[k], s[i] = s[i], s[k]
		}
	}
	rec(0)
	return perms
}

func suitIndex(s byte) int {
	return strings.IndexByte(engine.Suits, s)
}

// CanonicalKey returns the suit-normalized cache key for a scenario.
// Hero and villain are not interchangeable: swapping perspectives is a
// different equity.
func CanonicalKey(hero [2]Card, opp Opponent, board []Card) string {
	villain := ""
	var villainCards []Card
	if opp.Range != nil {
		villain = "range:" + opp.Range.Name
	} else {
		villainCards = opp.Hand[:]
	}

	best := ""
	for _, perm := range suitPerms {
		var b strings.Builder
		writeGroup(&b, hero[:], perm)
		b.WriteByte('|')
		if villainCards != nil {
			writeGroup(&b, villainCards, perm)
		} else {
			b.WriteString(villain)
		}
		b.WriteByte('|')
		writeGroup(&b, board, perm)
		enc := b.String()
		if best == "" || enc < best {
			best = enc
		}
	}
	return best
}

// writeGroup encodes cards under a suit relabeling, sorted so that the
// order the caller supplied the group in never leaks into the key.
func writeGroup(b *strings.Builder, cards []Card, perm [4]byte) {
	mapped := make([]Card, len(cards))
	for i, c := range cards {
		mapped[i] = Card{Rank: c.Rank, Suit: perm[suitIndex(c.Suit)]}
	}
	sort.Slice(mapped, func(i, j int) bool {
		if mapped[i].Rank != mapped[j].Rank {
			return mapped[i].Rank > mapped[j].Rank
		}
		return mapped[i].Suit < mapped[j].Suit
	})
	for _, c := range mapped {
		b.WriteString(c.String())
	}
}
