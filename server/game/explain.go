package game

import (
	"fmt"

	"equity-trainer/server/engine"

	poker "github.com/paulhankin/poker"
)

// Explain produces the post-grade teaching lines for a question. River
// questions with a known villain additionally name both made hands.
func Explain(q Question) []string {
	var lines []string
	switch q.Street {
	case River:
		lines = append(lines,
			"All cards dealt - equity is 0% or 100%",
			"Compare final 5-card hands directly")
		lines = append(lines, riverHands(q)...)
	case Turn:
		lines = append(lines,
			"One card to come - count outs and blockers",
			"Each out is roughly 2% equity")
	case Flop:
		lines = append(lines,
			"Two cards to come - multiply outs by 4% rule",
			"Consider both turn and river possibilities")
	default:
		lines = append(lines,
			"No community cards - hand strength matters most",
			"Position and post-flop playability also important")
	}
	return lines
}

func riverHands(q Question) []string {
	hero, err := engine.ParseHand(q.Hero)
	if err != nil {
		return nil
	}
	villain, err := engine.ParseHand(q.Villain)
	if err != nil {
		return nil // range opponent: no concrete hand to describe
	}
	board, err := engine.ParseCards(q.Board)
	if err != nil || len(board) != 5 {
		return nil
	}
	var lines []string
	if d, err := poker.Describe(toPH(append(hero[:], board...))); err == nil {
		lines = append(lines, fmt.Sprintf("Hero makes %s", d))
	}
	if d, err := poker.Describe(toPH(append(villain[:], board...))); err == nil {
		lines = append(lines, fmt.Sprintf("Villain makes %s", d))
	}
	return lines
}

// toPH converts engine cards to library cards. Engine ranks run 2..14
// (Ace=14); the library uses 1..13 with Ace=1.
func toPH(cards []engine.Card) []poker.Card {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
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
