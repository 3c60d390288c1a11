// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lorcania11/presstracker/middleware"
	"github.com/Lorcania11/presstracker/models"
	"github.com/Lorcania11/presstracker/scoring"
	"github.com/Lorcania11/presstracker/storage"
)

type ScoreHandler struct {
	store *storage.Store
}

func NewScoreHandler(store *storage.Store) *ScoreHandler {
	return &ScoreHandler{store: store}
}

// SubmitScores handles POST /matches/{id}/holes/{hole}/scores
//
// The body carries the score entry screen's raw text per team. Parsing to
// int-or-nil happens here, once; past this point a score is always numeric
// or absent. Completing the match's current hole may attach a press offer
// to the response, in which case the flow waits on the press decision
// endpoints before advancing.
func (h *ScoreHandler) SubmitScores(w http.ResponseWriter, r *http.Request) {
	match, ok := loadMatchByPath(h.store, w, r)
	if !ok {
		return
	}

	holeNumber, err := strconv.Atoi(r.PathValue("hole"))
	if err != nil || holeNumber < 1 || holeNumber > models.HolesPerRound {
		middleware.ErrorResponse(w, http.StatusBadRequest, "hole must be 1-18")
		return
	}

	var req models.SubmitScoresRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Scores) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scores cannot be empty")
		return
	}

	parsed := make(map[string]*int, len(req.Scores))
	for teamID, raw := range req.Scores {
		score, err := scoring.ParseScore(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "score for "+teamID+" must be a positive number")
			return
		}
		parsed[teamID] = score
	}

	offer, err := scoring.ApplyScores(&match, holeNumber-1, parsed)
	if err != nil {
		if errors.Is(err, scoring.ErrUnknownTeam) {
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Put(match); err != nil {
		slog.Error("failed to save match", "error", err, "match_id", match.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save scores")
		return
	}

	slog.Info("scores recorded",
		"match_id", match.ID,
		"hole", holeNumber,
		"complete", match.Holes[holeNumber-1].IsComplete,
		"press_offered", offer != nil,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitScoresResponse{
		Match:      match,
		Hole:       match.Holes[holeNumber-1],
		PressOffer: offer,
	})
}
