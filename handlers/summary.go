// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Lorcania11/presstracker/middleware"
	"github.com/Lorcania11/presstracker/models"
	"github.com/Lorcania11/presstracker/scoring"
	"github.com/Lorcania11/presstracker/storage"
)

type SummaryHandler struct {
	store *storage.Store
}

func NewSummaryHandler(store *storage.Store) *SummaryHandler {
	return &SummaryHandler{store: store}
}

// GetStandings handles GET /matches/{id}/standings
// Every enabled segment is evaluated over its full hole range. Sparse or
// partial hole data is reflected in the status text, never in an error.
func (h *SummaryHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	match, ok := loadMatchByPath(h.store, w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, scoring.Standings(match))
}

// GetPressSummary handles GET /matches/{id}/presses
// Returns every press settled against the current hole ledger, grouped by
// segment, original bets first. This output is the only thing the press
// summary screen consumes; it never re-derives settlement.
func (h *SummaryHandler) GetPressSummary(w http.ResponseWriter, r *http.Request) {
	match, ok := loadMatchByPath(h.store, w, r)
	if !ok {
		return
	}

	segments := scoring.SettleAll(match)
	if segments == nil {
		segments = []models.PressSegmentSummary{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.PressSummaryResponse{
		MatchID:  match.ID,
		Segments: segments,
	})
}
