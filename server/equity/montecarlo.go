package equity

import (
	"fmt"
	"math/rand"

	"equity-trainer/server/engine"
)

// Opponent is the tagged villain variant: exactly one of Hand or Range is
// set. A concrete hand on a 3+ card board goes down the exact path; a
// range, or any preflop spot, is estimated by Monte Carlo.
type Opponent struct {
	Hand  *[2]Card
	Range *engine.Range
}

func (o Opponent) valid() bool { return (o.Hand != nil) != (o.Range != nil) }

// MCParams is deliberately small: trial count, worker fan-out, and an
// optional pinned seed for reproducible runs.
type MCParams struct {
	Trials  int
	Workers int
	Seed    int64 // 0 = non-deterministic
}

// MonteCarlo estimates hero equity by independent sampled runouts. Each
// trial draws a villain hand (from the range, or fixed), completes the
// board uniformly from the undealt deck, and scores the showdown. Trials
// are partitioned across workers with per-worker rand state; the partial
// counts merge by summation.
func MonteCarlo(hero [2]Card, opp Opponent, board []Card, p MCParams) (Result, error) {
	if !opp.valid() {
		return Result{}, fmt.Errorf("monte carlo: opponent must be a hand or a range")
	}
	if p.Trials <= 0 {
		return Result{}, fmt.Errorf("monte carlo: trial count %d", p.Trials)
	}
	dead := [][]Card{hero[:], board}
	if opp.Hand != nil {
		dead = append(dead, opp.Hand[:])
	}
	if err := engine.CheckDistinct(dead...); err != nil {
		return Result{}, err
	}

	workers := p.Workers
	if workers <= 0 {
		workers = 4
	}
	if workers > p.Trials {
		workers = p.Trials
	}
	seed := p.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	per := p.Trials / workers
	extra := p.Trials % workers
	parts := make(chan Result, workers)
	for w := 0; w < workers; w++ {
		n := per
		if w < extra {
			n++
		}
		// Seeds are partitioned deterministically per worker so a pinned
		// seed reproduces the full run, not just single-worker runs.
		go func(n int, seed int64) {
			rng := rand.New(rand.NewSource(seed))
			parts <- runTrials(rng, hero, opp, board, n)
		}(n, seed+int64(w)*0x9E3779B9)
	}

	res := Result{Source: fmt.Sprintf("mc:%d", p.Trials)}
	for w := 0; w < workers; w++ {
		res = res.add(<-parts)
	}
	return res, nil
}

func runTrials(rng *rand.Rand, hero [2]Card, opp Opponent, board []Card, n int) Result {
	var res Result

	var base []Card // undealt deck for fixed-villain trials
	if opp.Hand != nil {
		base = engine.Remaining(hero[:], opp.Hand[:], board)
	}
	deadForRange := append(append([]Card{}, hero[:]...), board...)
	scratch := make([]Card, 0, 52)
	full := make([]Card, 5)
	copy(full, board)
	need := 5 - len(board)

	for i := 0; i < n; i++ {
		villain := [2]Card{}
		if opp.Hand != nil {
			villain = *opp.Hand
			scratch = append(scratch[:0], base...)
		} else {
			v, ok := opp.Range.Sample(rng, deadForRange)
			if !ok {
				// Range fully blocked by dead cards; validated upstream,
				// so treat as an invariant break rather than skew counts.
				panic("equity: range has no live combos")
			}
			villain = v
			scratch = append(scratch[:0], engine.Remaining(hero[:], villain[:], board)...)
		}

		draw := engine.Draw(rng, scratch, need)
		copy(full[len(board):], draw)
		res = res.add(compare(hero, villain, full))
	}
	return res
}
