// Package equity computes exact or Monte Carlo win/tie/loss probabilities
// for heads-up hold'em confrontations.
package equity

import (
	"errors"
	"fmt"

	"equity-trainer/server/cache"
	"equity-trainer/server/engine"
)

type Card = engine.Card

// ErrBadBoard reports a board length inconsistent with any street.
var ErrBadBoard = errors.New("board length inconsistent with street")

// Calculator dispatches between the exact and Monte Carlo paths and
// memoizes results under suit-canonical keys. The cache instance is
// supplied by the caller; a nil cache disables memoization.
type Calculator struct {
	Cache  *cache.Cache[Result]
	Params MCParams
}

// NewCalculator wires a calculator with the given cache and Monte Carlo
// trial budget.
func NewCalculator(c *cache.Cache[Result], trials int) *Calculator {
	return &Calculator{Cache: c, Params: MCParams{Trials: trials}}
}

// Compute validates the scenario and returns hero equity. A concrete
// villain on a flop, turn or river board is enumerated exactly;
// preflop and range opponents go through Monte Carlo. seed pins the
// Monte Carlo stream (0 = fresh randomness); the exact path ignores it.
func (c *Calculator) Compute(hero [2]Card, opp Opponent, board []Card, seed int64) (Result, error) {
	if !opp.valid() {
		return Result{}, fmt.Errorf("compute: opponent must be exactly one of hand or range")
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return Result{}, fmt.Errorf("%w: %d cards", ErrBadBoard, len(board))
	}
	dead := [][]Card{hero[:], board}
	if opp.Hand != nil {
		dead = append(dead, opp.Hand[:])
	}
	if err := engine.CheckDistinct(dead...); err != nil {
		return Result{}, err
	}

	run := func() (Result, error) {
		if opp.Hand != nil && len(board) >= 3 {
			return ExactVsHand(hero, *opp.Hand, board)
		}
		p := c.Params
		p.Seed = seed
		return MonteCarlo(hero, opp, board, p)
	}
	if c.Cache == nil {
		return run()
	}
	return c.Cache.GetOrCompute(CanonicalKey(hero, opp, board), run)
}
