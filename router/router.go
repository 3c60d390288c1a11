// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Lorcania11/presstracker/handlers"
	"github.com/Lorcania11/presstracker/middleware"
	"github.com/Lorcania11/presstracker/storage"
)

func NewRouter(store *storage.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(store)
	scoreHandler := handlers.NewScoreHandler(store)
	pressHandler := handlers.NewPressHandler(store)
	summaryHandler := handlers.NewSummaryHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Match lifecycle
	mux.HandleFunc("POST /matches", middleware.WithLogging(matchHandler.CreateMatch))
	mux.HandleFunc("GET /matches", middleware.WithLogging(matchHandler.ListMatches))
	mux.HandleFunc("DELETE /matches", middleware.WithLogging(matchHandler.ClearMatches))
	mux.HandleFunc("GET /matches/{id}", middleware.WithLogging(matchHandler.GetMatch))
	mux.HandleFunc("DELETE /matches/{id}", middleware.WithLogging(matchHandler.DeleteMatch))
	mux.HandleFunc("POST /matches/{id}/complete", middleware.WithLogging(matchHandler.CompleteMatch))

	// Score entry
	mux.HandleFunc("POST /matches/{id}/holes/{hole}/scores", middleware.WithLogging(scoreHandler.SubmitScores))

	// Press lifecycle
	mux.HandleFunc("POST /matches/{id}/presses", middleware.WithLogging(pressHandler.CreatePress))
	mux.HandleFunc("POST /matches/{id}/presses/decline", middleware.WithLogging(pressHandler.DeclinePress))

	// Standings and settlement
	mux.HandleFunc("GET /matches/{id}/standings", middleware.WithLogging(summaryHandler.GetStandings))
	mux.HandleFunc("GET /matches/{id}/presses", middleware.WithLogging(summaryHandler.GetPressSummary))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("presstracker API v1"))
	})

	return mux
}
