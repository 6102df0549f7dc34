package store

import (
	"context"
	"embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"equity-trainer/server/game"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

var ErrQuestionNotFound = errors.New("question not found")

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

/* -----------------------------
   Questions
------------------------------*/

// InsertQuestion stores a dealt question. Daily questions are dealt
// idempotently, so replays of an existing id are ignored.
func (db *DB) InsertQuestion(ctx context.Context, q game.Question, opponentType, mode string) error {
	_, err := db.Exec(ctx, `
        INSERT INTO questions(id, street, hero, villain, opponent_type, board, truth, source, tags, mode)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (id) DO NOTHING
    `, q.ID, string(q.Street), q.Hero, q.Villain, opponentType, q.Board, q.Truth, q.Source, q.Tags, mode)
	return err
}

func (db *DB) GetQuestion(ctx context.Context, id string) (game.Question, error) {
	var q game.Question
	var street string
	err := db.QueryRow(ctx, `
        SELECT id, street, hero, villain, board, truth, source, tags
          FROM questions WHERE id = $1
    `, id).Scan(&q.ID, &street, &q.Hero, &q.Villain, &q.Board, &q.Truth, &q.Source, &q.Tags)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return game.Question{}, ErrQuestionNotFound
		}
		return game.Question{}, err
	}
	q.Street = game.Street(street)
	return q, nil
}

/* -----------------------------
   Answers and streaks
------------------------------*/

func (db *DB) InsertAnswer(ctx context.Context, questionID, deviceID string, out game.Outcome, elapsedMS int, mode string) error {
	var dev any
	if deviceID != "" {
		dev = deviceID
	}
	_, err := db.Exec(ctx, `
        INSERT INTO answers(question_id, device_id, guess, truth, delta, score, elapsed_ms, mode)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, questionID, dev, out.Guess, out.Truth, out.Delta, out.Score, elapsedMS, mode)
	return err
}

// Streak counts the device's consecutive trailing close guesses
// (delta <= 1.0), looking back over the last 20 answers and capping at
// 10, the point where the score bonus maxes out.
func (db *DB) Streak(ctx context.Context, deviceID string) (int, error) {
	if deviceID == "" {
		return 0, nil
	}
	rows, err := db.Query(ctx, `
        SELECT delta FROM answers
         WHERE device_id = $1
         ORDER BY created_at DESC, id DESC
         LIMIT 20
    `, deviceID)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	streak := 0
	for rows.Next() {
		var delta float64
		if err := rows.Scan(&delta); err != nil {
			return 0, err
		}
		if delta > 1.0 {
			break
		}
		streak++
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if streak > 10 {
		streak = 10
	}
	return streak, nil
}

/* -----------------------------
   Aggregate stats
------------------------------*/

type StreetStats struct {
	Attempts int     `json:"attempts"`
	AvgDelta float64 `json:"avg_delta"`
}

type PlayerStats struct {
	GamesPlayed int                    `json:"games_played"`
	AvgDelta    float64                `json:"avg_delta"`
	Perfects    int                    `json:"perfects"`
	CloseRate   float64                `json:"close_rate"`
	ByStreet    map[string]StreetStats `json:"by_street"`
}

func (db *DB) Stats(ctx context.Context, deviceID string) (PlayerStats, error) {
	stats := PlayerStats{ByStreet: map[string]StreetStats{}}

	err := db.QueryRow(ctx, `
        SELECT COUNT(*),
               COALESCE(AVG(delta), 0),
               COUNT(*) FILTER (WHERE delta <= 0.5),
               COALESCE(AVG((delta <= 1.0)::int), 0)
          FROM answers
         WHERE device_id = $1
    `, deviceID).Scan(&stats.GamesPlayed, &stats.AvgDelta, &stats.Perfects, &stats.CloseRate)
	if err != nil {
		return stats, err
	}
	if stats.GamesPlayed == 0 {
		return stats, nil
	}

	rows, err := db.Query(ctx, `
        SELECT q.street, COUNT(*), AVG(a.delta)
          FROM answers a
          JOIN questions q ON q.id = a.question_id
         WHERE a.device_id = $1
         GROUP BY q.street
    `, deviceID)
	if err != nil {
		return stats, err
	}
	defer rows.Close()
	for rows.Next() {
		var street string
		var ss StreetStats
		if err := rows.Scan(&street, &ss.Attempts, &ss.AvgDelta); err != nil {
			return stats, err
		}
		stats.ByStreet[street] = ss
	}
	return stats, rows.Err()
}
