// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Lorcania11/presstracker/middleware"
	"github.com/Lorcania11/presstracker/models"
	"github.com/Lorcania11/presstracker/scoring"
	"github.com/Lorcania11/presstracker/storage"
)

type MatchHandler struct {
	store *storage.Store
}

func NewMatchHandler(store *storage.Store) *MatchHandler {
	return &MatchHandler{store: store}
}

// CreateMatch handles POST /matches
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	for _, team := range req.Teams {
		if team.Name == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "every team needs a name")
			return
		}
	}

	match, err := scoring.NewMatch(req, uuid.NewString)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Put(match); err != nil {
		slog.Error("failed to save match", "error", err, "match_id", match.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create match")
		return
	}

	slog.Info("match created",
		"match_id", match.ID,
		"teams", len(match.Teams),
		"play_format", match.PlayFormat,
		"presses_enabled", match.EnablePresses,
	)

	middleware.JSONResponse(w, http.StatusCreated, match)
}

// ListMatches handles GET /matches
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.LoadAll())
}

// GetMatch handles GET /matches/{id}
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	match, ok := h.loadMatch(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, match)
}

// DeleteMatch handles DELETE /matches/{id}
func (h *MatchHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	match, ok := h.loadMatch(w, r)
	if !ok {
		return
	}

	if err := h.store.Remove(match.ID); err != nil {
		slog.Error("failed to delete match", "error", err, "match_id", match.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete match")
		return
	}

	slog.Info("match deleted", "match_id", match.ID)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"deleted": match.ID})
}

// ClearMatches handles DELETE /matches
func (h *MatchHandler) ClearMatches(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearAll(); err != nil {
		slog.Error("failed to clear matches", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear matches")
		return
	}

	slog.Info("match collection cleared")
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"cleared": storage.CollectionKey})
}

// CompleteMatch handles POST /matches/{id}/complete
// The completion flag is a user-set label; it is never derived from the
// hole ledger.
func (h *MatchHandler) CompleteMatch(w http.ResponseWriter, r *http.Request) {
	match, ok := h.loadMatch(w, r)
	if !ok {
		return
	}

	req := models.MarkCompleteRequest{IsComplete: true}
	if r.ContentLength > 0 {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	match.IsComplete = req.IsComplete
	if err := h.store.Put(match); err != nil {
		slog.Error("failed to save match", "error", err, "match_id", match.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update match")
		return
	}

	slog.Info("match completion flag set", "match_id", match.ID, "is_complete", match.IsComplete)
	middleware.JSONResponse(w, http.StatusOK, match)
}

// loadMatch fetches the match named in the path, writing the error response
// itself when the ID is missing or unknown.
func (h *MatchHandler) loadMatch(w http.ResponseWriter, r *http.Request) (models.Match, bool) {
	return loadMatchByPath(h.store, w, r)
}

func loadMatchByPath(store *storage.Store, w http.ResponseWriter, r *http.Request) (models.Match, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "match id is required")
		return models.Match{}, false
	}

	match, ok := store.GetByID(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
		return models.Match{}, false
	}
	return match, true
}
