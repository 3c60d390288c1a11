// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Lorcania11/presstracker/middleware"
	"github.com/Lorcania11/presstracker/models"
	"github.com/Lorcania11/presstracker/scoring"
	"github.com/Lorcania11/presstracker/storage"
)

type PressHandler struct {
	store *storage.Store
}

func NewPressHandler(store *storage.Store) *PressHandler {
	return &PressHandler{store: store}
}

// CreatePress handles POST /matches/{id}/presses
//
// The body is the press wizard's output: a completed press minus its ID.
// Accepting a press while a decision is pending also resolves that decision
// and advances the scoring flow.
func (h *PressHandler) CreatePress(w http.ResponseWriter, r *http.Request) {
	match, ok := loadMatchByPath(h.store, w, r)
	if !ok {
		return
	}

	var req models.CreatePressRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	press, err := scoring.ValidatePress(match, models.Press{
		FromTeamID: req.FromTeamID,
		ToTeamID:   req.ToTeamID,
		HoleIndex:  req.HoleIndex,
		PressType:  req.PressType,
	})
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrPressNotAllowed):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, scoring.ErrUnknownTeam):
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	press.ID = uuid.NewString()
	scoring.AcceptPress(&match, press)

	if err := h.store.Put(match); err != nil {
		slog.Error("failed to save match", "error", err, "match_id", match.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save press")
		return
	}

	slog.Info("press created",
		"match_id", match.ID,
		"press_id", press.ID,
		"press_type", press.PressType,
		"hole_index", press.HoleIndex,
		"original_bet", press.IsOriginalBet,
	)

	middleware.JSONResponse(w, http.StatusCreated, scoring.SettlePress(match, press))
}

// DeclinePress handles POST /matches/{id}/presses/decline
//
// Declines the pending press offer and advances the scoring flow. Declining
// on the final hole leaves the round finished.
func (h *PressHandler) DeclinePress(w http.ResponseWriter, r *http.Request) {
	match, ok := loadMatchByPath(h.store, w, r)
	if !ok {
		return
	}

	if err := scoring.DeclinePress(&match); err != nil {
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	}

	if err := h.store.Put(match); err != nil {
		slog.Error("failed to save match", "error", err, "match_id", match.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save match")
		return
	}

	slog.Info("press declined", "match_id", match.ID, "current_hole", match.CurrentHole)
	middleware.JSONResponse(w, http.StatusOK, match)
}
