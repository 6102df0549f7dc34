package game

// Outcome is everything the grading step derives from one guess. It is
// returned to the caller, never stored by this package.
type Outcome struct {
	Truth   float64  `json:"truth"`
	Guess   float64  `json:"guess"`
	Delta   float64  `json:"delta"`
	Score   int      `json:"score"`
	Streak  int      `json:"streak"`
	Explain []string `json:"explain,omitempty"`
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// baseScore tiers the raw accuracy of a guess.
func baseScore(delta float64) int {
	switch {
	case delta <= 0.5:
		return 100
	case delta <= 1.0:
		return 85
	case delta <= 2.5:
		return 70
	default:
		s := int(70 - (delta-2.5)*12)
		if s < 0 {
			return 0
		}
		return s
	}
}

// Score is the pure scoring function: (delta, prior streak) in, (final
// score, new streak) out, nothing else consulted. A close guess (delta
// <= 1.0) extends the streak and earns +5% per streak point, capped at
// +50%; anything worse resets the streak and gets no bonus.
func Score(delta float64, priorStreak int) (score, newStreak int) {
	base := baseScore(delta)
	if delta > 1.0 {
		return base, 0
	}
	newStreak = priorStreak + 1
	bonus := newStreak * 5
	if bonus > 50 {
		bonus = 50
	}
	return int(float64(base)*(1+float64(bonus)/100) + 0.5), newStreak
}

// Grade grades one guess against the computed truth. Out-of-range guesses
// are clamped, never rejected; this operation cannot fail.
func Grade(truth, guess float64, priorStreak int) Outcome {
	truth = clampPct(truth)
	guess = clampPct(guess)
	delta := truth - guess
	if delta < 0 {
		delta = -delta
	}
	score, streak := Score(delta, priorStreak)
	return Outcome{
		Truth:  truth,
		Guess:  guess,
		Delta:  delta,
		Score:  score,
		Streak: streak,
	}
}
