package game

import "equity-trainer/server/engine"

// TextureTags labels notable board textures. Boards shorter than a flop
// have no texture.
func TextureTags(board []engine.Card) []string {
	if len(board) < 3 {
		return nil
	}
	var tags []string

	suitCount := map[byte]int{}
	maxSuit := 0
	for _, c := range board {
		suitCount[c.Suit]++
		if suitCount[c.Suit] > maxSuit {
			maxSuit = suitCount[c.Suit]
		}
	}
	switch {
	case maxSuit >= 3:
		tags = append(tags, "monotone")
	case maxSuit == 2:
		tags = append(tags, "two_tone")
	}

	rankCount := map[int]int{}
	paired := false
	lo, hi := 15, 0
	for _, c := range board {
		rankCount[c.Rank]++
		if rankCount[c.Rank] >= 2 {
			paired = true
		}
		if c.Rank < lo {
			lo = c.Rank
		}
		if c.Rank > hi {
			hi = c.Rank
		}
	}
	if paired {
		tags = append(tags, "paired")
	}
	if hi-lo <= 4 {
		tags = append(tags, "connected")
	}
	return tags
}
