package equity

// Result aggregates win/tie/loss counts for the hero. Total is the exact
// enumeration size or the Monte Carlo trial count; it is always > 0 for
// a Result produced by this package.
type Result struct {
	Wins   int64  `json:"wins"`
	Ties   int64  `json:"ties"`
	Total  int64  `json:"total"`
	Source string `json:"source"` // "exact" or "mc:<trials>"
}

// Percent is hero equity in [0,100], counting a tie as half a win.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		// Input validation makes an empty enumeration impossible; treat
		// it as a broken invariant rather than a recoverable state.
		panic("equity: result with zero total")
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(r.Total) * 100
}

func (a Result) add(b Result) Result {
	a.Wins += b.Wins
	a.Ties += b.Ties
	a.Total += b.Total
	return a
}
