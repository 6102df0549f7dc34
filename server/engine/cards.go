package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// Card uses the same two-character notation as the wire format:
// rank 2..14 (Ace=14), suit one of 'c' 'd' 'h' 's'. e.g. "As" => {14, 's'}.
type Card struct {
	Rank int
	Suit byte
}

var (
	ErrInvalidCard   = errors.New("invalid card format")
	ErrDuplicateCard = errors.New("duplicate card")
)

const Suits = "cdhs"

func (c Card) String() string {
	ranks := "  23456789TJQKA"
	return fmt.Sprintf("%c%c", ranks[c.Rank], c.Suit)
}

// ParseCard converts a token like "As" or "7d" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	var rank int
	switch s[0] {
	case 'A':
		rank = 14
	case 'K':
		rank = 13
	case 'Q':
		rank = 12
	case 'J':
		rank = 11
	case 'T':
		rank = 10
	default:
		if s[0] >= '2' && s[0] <= '9' {
			rank = int(s[0] - '0')
		}
	}
	if rank == 0 {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, s)
	}
	switch s[1] {
	case 'c', 'd', 'h', 's':
	default:
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, s)
	}
	return Card{Rank: rank, Suit: s[1]}, nil
}

// ParseHand converts a four-character token like "AsKd" into a hole pair.
func ParseHand(s string) ([2]Card, error) {
	if len(s) != 4 {
		return [2]Card{}, fmt.Errorf("%w: hand %q", ErrInvalidCard, s)
	}
	c1, err := ParseCard(s[:2])
	if err != nil {
		return [2]Card{}, err
	}
	c2, err := ParseCard(s[2:])
	if err != nil {
		return [2]Card{}, err
	}
	if c1 == c2 {
		return [2]Card{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c1)
	}
	return [2]Card{c1, c2}, nil
}

func ParseCards(tokens []string) ([]Card, error) {
	out := make([]Card, 0, len(tokens))
	for _, t := range tokens {
		c, err := ParseCard(t)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// NewDeck returns the full 52-card deck in a fixed suit-major order.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := 0; s < 4; s++ {
		for rnk := 2; rnk <= 14; rnk++ {
			deck = append(deck, Card{Rank: rnk, Suit: Suits[s]})
		}
	}
	return deck
}

// CheckDistinct fails with ErrDuplicateCard if any card appears twice
// across the given groups.
func CheckDistinct(groups ...[]Card) error {
	seen := map[Card]bool{}
	for _, g := range groups {
		for _, c := range g {
			if seen[c] {
				return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
			}
			seen[c] = true
		}
	}
	return nil
}

// Remaining returns the deck minus the dead cards, preserving deck order.
func Remaining(dead ...[]Card) []Card {
	used := map[Card]bool{}
	for _, g := range dead {
		for _, c := range g {
			used[c] = true
		}
	}
	out := make([]Card, 0, 52)
	for _, c := range NewDeck() {
		if !used[c] {
			out = append(out, c)
		}
	}
	return out
}

// Draw removes n uniformly random cards from deck using the supplied source.
// The deck slice is reordered in place; the drawn cards are the first n.
func Draw(r *rand.Rand, deck []Card, n int) []Card {
	for i := 0; i < n; i++ {
		j := i + r.Intn(len(deck)-i)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck[:n]
}
