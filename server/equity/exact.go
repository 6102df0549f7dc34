package equity

import (
	"fmt"

	"equity-trainer/server/engine"
)

// ExactVsHand enumerates every completion of a 3/4/5-card board against a
// concrete villain hand. With both hands known, 45 cards are unseen on
// the flop: the flop walks all C(45,2)=990 turn+river pairs, the turn all
// 44 rivers, the river compares directly. Deterministic: the same inputs
// always return the identical Result.
func ExactVsHand(hero, villain [2]Card, board []Card) (Result, error) {
	if err := engine.CheckDistinct(hero[:], villain[:], board); err != nil {
		return Result{}, err
	}
	res := Result{Source: "exact"}

	switch len(board) {
	case 5:
		res = res.add(compare(hero, villain, board))
		return res, nil
	case 4:
		for _, river := range engine.Remaining(hero[:], villain[:], board) {
			full := append(board[:4:4], river)
			res = res.add(compare(hero, villain, full))
		}
		return res, nil
	case 3:
		remaining := engine.Remaining(hero[:], villain[:], board)
		full := make([]Card, 5)
		copy(full, board)
		for i := 0; i < len(remaining); i++ {
			for j := i + 1; j < len(remaining); j++ {
				full[3], full[4] = remaining[i], remaining[j]
				res = res.add(compare(hero, villain, full))
			}
		}
		return res, nil
	default:
		return Result{}, fmt.Errorf("%w: exact path needs 3-5 board cards, got %d", ErrBadBoard, len(board))
	}
}

// compare scores one fully dealt runout.
func compare(hero, villain [2]Card, board []Card) Result {
	h := engine.Eval7(hero, board)
	v := engine.Eval7(villain, board)
	r := Result{Total: 1}
	switch {
	case h > v:
		r.Wins = 1
	case h == v:
		r.Ties = 1
	}
	return r
}
