// Package game turns the equity engine into a quiz: it deals questions,
// grades guesses, and keeps the daily mode reproducible per device.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"equity-trainer/server/engine"
	"equity-trainer/server/equity"
)

type Card = engine.Card

type Street string

const (
	Preflop Street = "pre"
	Flop    Street = "flop"
	Turn    Street = "turn"
	River   Street = "river"
)

// streetOrder fixes the iteration order for weighted sampling; ranging
// over a map would break daily determinism.
var streetOrder = []Street{Flop, Turn, River, Preflop}

func (s Street) BoardSize() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	}
	return 0
}

// Question is immutable once dealt. Villain is either a concrete hand
// ("QhJh") or a range archetype name; Truth and Source are kept out of
// the deal payload so the client cannot peek.
type Question struct {
	ID      string   `json:"id"`
	Street  Street   `json:"street"`
	Hero    string   `json:"hero"`
	Villain string   `json:"villain"`
	Board   []string `json:"board"`
	Tags    []string `json:"tags"`
	Truth   float64  `json:"-"`
	Source  string   `json:"-"`
}

type Config struct {
	StreetWeights map[Street]float64
	DailySize     int
	Salt          string
}

func DefaultConfig() Config {
	return Config{
		StreetWeights: map[Street]float64{Flop: 0.35, Turn: 0.30, River: 0.25, Preflop: 0.10},
		DailySize:     10,
		Salt:          "poker_equity_salt_2024",
	}
}

type Generator struct {
	calc *equity.Calculator
	cfg  Config
	now  func() time.Time
}

func NewGenerator(calc *equity.Calculator, cfg Config) (*Generator, error) {
	if cfg.DailySize <= 0 {
		return nil, fmt.Errorf("generator: daily size %d", cfg.DailySize)
	}
	total := 0.0
	for _, s := range streetOrder {
		w := cfg.StreetWeights[s]
		if w < 0 {
			return nil, fmt.Errorf("generator: negative weight for %s", s)
		}
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("generator: street weights sum to zero")
	}
	return &Generator{calc: calc, cfg: cfg, now: time.Now}, nil
}

// Drill deals one question from a fresh non-deterministic source.
// opponentType "" deals a concrete villain hand; an archetype name deals
// hero versus that range.
func (g *Generator) Drill(opponentType string) (Question, error) {
	rng := rand.New(rand.NewSource(g.now().UnixNano()))
	id := fmt.Sprintf("Q_%s_%05d", g.now().UTC().Format("20060102_150405"), 10000+rng.Intn(90000))
	return g.deal(rng, id, opponentType)
}

// Daily deals the device's question set for one day. The stream is seeded
// from (date, deviceID, salt), so two calls with the same inputs produce
// byte-identical sequences and any other device or day diverges.
func (g *Generator) Daily(deviceID, date, opponentType string) ([]Question, error) {
	rng := rand.New(rand.NewSource(DailySeed(date, deviceID, g.cfg.Salt)))
	out := make([]Question, 0, g.cfg.DailySize)
	for i := 0; i < g.cfg.DailySize; i++ {
		id := fmt.Sprintf("DAILY_%s_%s_%02d", date, deviceID, i)
		q, err := g.deal(rng, id, opponentType)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func (g *Generator) deal(rng *rand.Rand, id, opponentType string) (Question, error) {
	var oppRange *engine.Range
	if opponentType != "" && opponentType != "hand" {
		r, err := engine.RangeByName(opponentType)
		if err != nil {
			return Question{}, err
		}
		oppRange = r
	}

	street := g.sampleStreet(rng)
	boardSize := street.BoardSize()

	deck := engine.NewDeck()
	need := 2 + boardSize
	if oppRange == nil {
		need += 2
	}
	dealt := engine.Draw(rng, deck, need)

	hero := [2]Card{dealt[0], dealt[1]}
	rest := dealt[2:]
	opp := equity.Opponent{Range: oppRange}
	villain := ""
	if oppRange == nil {
		hand := [2]Card{rest[0], rest[1]}
		opp.Hand = &hand
		villain = hand[0].String() + hand[1].String()
		rest = rest[2:]
	} else {
		villain = oppRange.Name
	}
	board := append([]Card{}, rest...)

	res, err := g.calc.Compute(hero, opp, board, QuestionSeed(id, g.cfg.Salt))
	if err != nil {
		return Question{}, err
	}

	boardStr := make([]string, len(board))
	for i, c := range board {
		boardStr[i] = c.String()
	}
	return Question{
		ID:      id,
		Street:  street,
		Hero:    hero[0].String() + hero[1].String(),
		Villain: villain,
		Board:   boardStr,
		Tags:    TextureTags(board),
		Truth:   res.Percent(),
		Source:  res.Source,
	}, nil
}

func (g *Generator) sampleStreet(rng *rand.Rand) Street {
	total := 0.0
	for _, s := range streetOrder {
		total += g.cfg.StreetWeights[s]
	}
	roll := rng.Float64() * total
	for _, s := range streetOrder {
		roll -= g.cfg.StreetWeights[s]
		if roll < 0 {
			return s
		}
	}
	return Preflop
}
