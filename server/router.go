package main

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"equity-trainer/server/engine"
	"equity-trainer/server/equity"
	"equity-trainer/server/game"
	"equity-trainer/server/store"
)

func Router(db *store.DB, gen *game.Generator, calc *equity.Calculator, metrics *requestMetrics, cfg appConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	r.Get("/api/metrics", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"request_stats": metrics.summary(),
			"preflop_mc":    cfg.Trials,
		})
	})

	r.Post("/api/deal", metrics.timed("deal", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		mode := queryDef(r, "mode", "drill")
		oppType := r.URL.Query().Get("opponent_type")

		q, err := gen.Drill(oppType)
		if err != nil {
			httpError(w, err)
			return
		}
		if err := db.InsertQuestion(ctx, q, oppType, mode); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, q)
	}))

	r.Get("/api/daily", metrics.timed("daily", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		deviceID := r.URL.Query().Get("device_id")
		if len(deviceID) < 3 {
			http.Error(w, "valid device_id is required", http.StatusBadRequest)
			return
		}
		date := queryDef(r, "date", time.Now().UTC().Format("20060102"))
		oppType := r.URL.Query().Get("opponent_type")

		qs, err := gen.Daily(deviceID, date, oppType)
		if err != nil {
			httpError(w, err)
			return
		}
		for _, q := range qs {
			if err := db.InsertQuestion(ctx, q, oppType, "daily"); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		writeJSON(w, qs)
	}))

	r.Post("/api/grade", metrics.timed("grade", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req struct {
			ID        string  `json:"id"`
			Guess     float64 `json:"guess_equity_hero"`
			ElapsedMS int     `json:"elapsed_ms"`
			DeviceID  string  `json:"device_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		if req.ElapsedMS < 0 {
			http.Error(w, "elapsed time cannot be negative", http.StatusBadRequest)
			return
		}
		q, err := db.GetQuestion(ctx, req.ID)
		if err != nil {
			if errors.Is(err, store.ErrQuestionNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		streak, err := db.Streak(ctx, req.DeviceID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		out := game.Grade(q.Truth, req.Guess, streak)
		out.Explain = game.Explain(q)
		if err := db.InsertAnswer(ctx, q.ID, req.DeviceID, out, req.ElapsedMS, "drill"); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{
			"truth":   round1(out.Truth),
			"delta":   round1(out.Delta),
			"score":   out.Score,
			"streak":  out.Streak,
			"source":  q.Source,
			"explain": out.Explain,
		})
	}))

	r.Post("/api/equity", metrics.timed("equity", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Hero    string   `json:"hero"`
			Villain string   `json:"villain"`
			Board   []string `json:"board"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body", http.StatusBadRequest)
			return
		}
		hero, err := engine.ParseHand(req.Hero)
		if err != nil {
			httpError(w, err)
			return
		}
		var opp equity.Opponent
		if hand, err := engine.ParseHand(req.Villain); err == nil {
			opp.Hand = &hand
		} else if rng, rerr := engine.RangeByName(req.Villain); rerr == nil {
			opp.Range = rng
		} else {
			httpError(w, err)
			return
		}
		board, err := engine.ParseCards(req.Board)
		if err != nil {
			httpError(w, err)
			return
		}
		res, err := calc.Compute(hero, opp, board, 0)
		if err != nil {
			httpError(w, err)
			return
		}
		writeJSON(w, map[string]any{
			"wins":           res.Wins,
			"ties":           res.Ties,
			"total":          res.Total,
			"equity_percent": res.Percent(),
			"source":         res.Source,
		})
	}))

	r.Get("/api/me/stats", metrics.timed("stats", func(w http.ResponseWriter, r *http.Request) {
		deviceID := r.URL.Query().Get("device_id")
		if len(deviceID) < 3 {
			http.Error(w, "valid device_id is required", http.StatusBadRequest)
			return
		}
		stats, err := db.Stats(r.Context(), deviceID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, stats)
	}))

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// httpError maps deterministic input errors to 400, everything else to 500.
func httpError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrInvalidCard),
		errors.Is(err, engine.ErrDuplicateCard),
		errors.Is(err, engine.ErrUnknownRange),
		errors.Is(err, equity.ErrBadBoard):
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

func queryDef(r *http.Request, key, def string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
