package engine

import (
	"fmt"
	"math/bits"
)

// HandRank is a packed, totally ordered hand strength value:
// category in bits 20..23, then five rank nibbles (rank-2) from most to
// least significant. Comparing two HandRanks with > ranks poker hands
// correctly, including kickers. Identical card sets always produce
// bit-identical values, so a HandRank is usable as a sort or cache key.
type HandRank uint32

type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case Trips:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case Quads:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	}
	return "unknown"
}

func (h HandRank) Category() Category { return Category(h >> 20) }

func pack(cat Category, kickers ...int) HandRank {
	v := uint32(cat) << 20
	shift := 16
	for _, k := range kickers {
		v |= uint32(k-2) << shift
		shift -= 4
	}
	return HandRank(v)
}

// straightHigh returns the high card of the best straight in a rank
// bitmask (bit r set for rank r, 2..14), or 0 if none. An ace counts
// both high and low, so the wheel reports high card 5.
func straightHigh(mask uint16) int {
	if mask&(1<<14) != 0 {
		mask |= 1 << 1 // ace plays low
	}
	const run = 0x1F
	for hi := 14; hi >= 5; hi-- {
		if mask>>(hi-4)&run == run {
			return hi
		}
	}
	return 0
}

// topRanks returns the n highest set ranks in mask, descending.
func topRanks(mask uint16, n int) []int {
	out := make([]int, 0, n)
	for r := 14; r >= 2 && len(out) < n; r-- {
		if mask&(1<<r) != 0 {
			out = append(out, r)
		}
	}
	return out
}

// Evaluate ranks a set of 5, 6, or 7 distinct cards. The result is the
// rank of the best 5-card hand contained in the set. Order of the input
// never affects the result.
func Evaluate(cards []Card) (HandRank, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return 0, fmt.Errorf("evaluate: want 5-7 cards, got %d", len(cards))
	}
	if err := CheckDistinct(cards); err != nil {
		return 0, err
	}
	return eval(cards), nil
}

// eval is the hot path: no allocation-heavy subset search, just suit and
// rank masks. Direct detection over the full set yields the same answer
// as the max over all 5-card subsets.
func eval(cards []Card) HandRank {
	var suitMask [4]uint16
	var rankCount [15]int
	var rankMask uint16

	for _, c := range cards {
		var si int
		switch c.Suit {
		case 'c':
			si = 0
		case 'd':
			si = 1
		case 'h':
			si = 2
		default:
			si = 3
		}
		suitMask[si] |= 1 << c.Rank
		rankCount[c.Rank]++
		rankMask |= 1 << c.Rank
	}

	// Flush suit, if any. With at most 7 cards only one suit can reach 5.
	flushSuit := -1
	for si, m := range suitMask {
		if bits.OnesCount16(m) >= 5 {
			flushSuit = si
			break
		}
	}

	if flushSuit >= 0 {
		if hi := straightHigh(suitMask[flushSuit]); hi > 0 {
			return pack(StraightFlush, hi)
		}
	}

	quad, trips, pairs := 0, []int{}, []int{}
	for r := 14; r >= 2; r-- {
		switch rankCount[r] {
		case 4:
			quad = r
		case 3:
			trips = append(trips, r)
		case 2:
			pairs = append(pairs, r)
		}
	}

	if quad > 0 {
		kick := topRanks(rankMask&^(1<<quad), 1)
		return pack(Quads, quad, kick[0])
	}
	if len(trips) > 0 && (len(pairs) > 0 || len(trips) > 1) {
		over := 0
		if len(trips) > 1 {
			over = trips[1] // a second trips plays as the pair
		}
		if len(pairs) > 0 && pairs[0] > over {
			over = pairs[0]
		}
		return pack(FullHouse, trips[0], over)
	}
	if flushSuit >= 0 {
		ks := topRanks(suitMask[flushSuit], 5)
		return pack(Flush, ks[0], ks[1], ks[2], ks[3], ks[4])
	}
	if hi := straightHigh(rankMask); hi > 0 {
		return pack(Straight, hi)
	}
	if len(trips) > 0 {
		ks := topRanks(rankMask&^(1<<trips[0]), 2)
		return pack(Trips, trips[0], ks[0], ks[1])
	}
	if len(pairs) >= 2 {
		rest := rankMask &^ (1 << pairs[0]) &^ (1 << pairs[1])
		kick := topRanks(rest, 1)
		return pack(TwoPair, pairs[0], pairs[1], kick[0])
	}
	if len(pairs) == 1 {
		ks := topRanks(rankMask&^(1<<pairs[0]), 3)
		return pack(OnePair, pairs[0], ks[0], ks[1], ks[2])
	}
	ks := topRanks(rankMask, 5)
	return pack(HighCard, ks[0], ks[1], ks[2], ks[3], ks[4])
}

// Eval7 ranks a hole pair plus a complete 5-card board without the
// validation overhead of Evaluate. Inputs must already be distinct.
func Eval7(hole [2]Card, board []Card) HandRank {
	var all [7]Card
	all[0], all[1] = hole[0], hole[1]
	copy(all[2:], board)
	return eval(all[:])
}
