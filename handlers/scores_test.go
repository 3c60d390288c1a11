// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lorcania11/presstracker/models"
	"github.com/Lorcania11/presstracker/testutil"
)

func submitScores(t *testing.T, h *ScoreHandler, matchID, hole string, scores map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("POST", "/matches/"+matchID+"/holes/"+hole+"/scores",
		models.SubmitScoresRequest{Scores: scores}, nil)
	req.SetPathValue("id", matchID)
	req.SetPathValue("hole", hole)
	w := httptest.NewRecorder()
	h.SubmitScores(w, req)
	return w
}

func TestSubmitScores(t *testing.T) {
	store := testutil.SetupTestStore(t)
	h := NewScoreHandler(store)
	match := seedMatch(t, store)
	t1, t2 := match.Teams[0].ID, match.Teams[1].ID

	w := submitScores(t, h, match.ID, "1", map[string]string{t1: "4", t2: "5"})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SubmitScoresResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.Hole.IsComplete {
		t.Error("hole not complete with both teams scored")
	}
	if resp.PressOffer == nil {
		t.Fatal("expected a press offer on completing the current hole")
	}
	if resp.PressOffer.HoleIndex != 0 {
		t.Errorf("offer hole index = %d, want 0", resp.PressOffer.HoleIndex)
	}
	if !resp.Match.PressPending {
		t.Error("match not waiting on the press decision")
	}

	stored, _ := store.GetByID(match.ID)
	if !stored.PressPending {
		t.Error("press-pending state not persisted")
	}
	if got := stored.Teams[0].Scores[0]; got == nil || *got != 4 {
		t.Errorf("stored team score = %v, want 4", got)
	}
}

func TestSubmitScoresPartialHole(t *testing.T) {
	store := testutil.SetupTestStore(t)
	h := NewScoreHandler(store)
	match := seedMatch(t, store)

	w := submitScores(t, h, match.ID, "1", map[string]string{match.Teams[0].ID: "4"})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SubmitScoresResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Hole.IsComplete {
		t.Error("hole complete with one team unscored")
	}
	if resp.PressOffer != nil {
		t.Error("got a press offer for a partial hole")
	}
	if resp.Match.CurrentHole != 0 {
		t.Errorf("CurrentHole = %d, want 0", resp.Match.CurrentHole)
	}
}

func TestSubmitScoresClearsWithEmptyString(t *testing.T) {
	store := testutil.SetupTestStore(t)
	h := NewScoreHandler(store)
	match := testutil.BuildMatch(t, models.PlayFormatMatch, false, defaultFormats(), "Alpha", "Bravo")
	if err := store.Put(match); err != nil {
		t.Fatalf("Failed to seed match: %v", err)
	}
	t1, t2 := match.Teams[0].ID, match.Teams[1].ID

	submitScores(t, h, match.ID, "1", map[string]string{t1: "4", t2: "5"})
	w := submitScores(t, h, match.ID, "1", map[string]string{t1: ""})
	testutil.AssertStatus(t, w, http.StatusOK)

	stored, _ := store.GetByID(match.ID)
	if stored.Teams[0].Scores[0] != nil {
		t.Error("score not cleared")
	}
	if stored.Holes[0].IsComplete {
		t.Error("hole still complete after clearing")
	}
}

func TestSubmitScoresValidation(t *testing.T) {
	store := testutil.SetupTestStore(t)
	h := NewScoreHandler(store)
	match := seedMatch(t, store)
	t1 := match.Teams[0].ID

	tests := []struct {
		name   string
		hole   string
		scores map[string]string
		status int
	}{
		{"hole zero", "0", map[string]string{t1: "4"}, http.StatusBadRequest},
		{"hole nineteen", "19", map[string]string{t1: "4"}, http.StatusBadRequest},
		{"hole not a number", "abc", map[string]string{t1: "4"}, http.StatusBadRequest},
		{"empty scores", "1", map[string]string{}, http.StatusBadRequest},
		{"non-numeric score", "1", map[string]string{t1: "four"}, http.StatusBadRequest},
		{"zero score", "1", map[string]string{t1: "0"}, http.StatusBadRequest},
		{"unknown team", "1", map[string]string{"nobody": "4"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := submitScores(t, h, match.ID, tt.hole, tt.scores)
			testutil.AssertStatus(t, w, tt.status)
		})
	}
}

func TestSubmitScoresUnknownMatch(t *testing.T) {
	store := testutil.SetupTestStore(t)
	h := NewScoreHandler(store)

	w := submitScores(t, h, "ghost", "1", map[string]string{"t1": "4"})
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestSubmitScoresAdvancesWithoutPresses(t *testing.T) {
	store := testutil.SetupTestStore(t)
	h := NewScoreHandler(store)
	match := testutil.BuildMatch(t, models.PlayFormatMatch, false, defaultFormats(), "Alpha", "Bravo")
	if err := store.Put(match); err != nil {
		t.Fatalf("Failed to seed match: %v", err)
	}
	t1, t2 := match.Teams[0].ID, match.Teams[1].ID

	w := submitScores(t, h, match.ID, "1", map[string]string{t1: "4", t2: "5"})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SubmitScoresResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.PressOffer != nil {
		t.Error("got a press offer with presses disabled")
	}
	if resp.Match.CurrentHole != 1 {
		t.Errorf("CurrentHole = %d, want 1", resp.Match.CurrentHole)
	}
}
