// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/Lorcania11/presstracker/db"
	"github.com/Lorcania11/presstracker/models"
	"github.com/Lorcania11/presstracker/scoring"
	"github.com/Lorcania11/presstracker/storage"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
// The single-connection cap keeps the pool from spawning a second, empty
// in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// SetupTestStore opens an in-memory database and wraps it in a Store.
func SetupTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(SetupTestDB(t))
}

// NewTestID returns a deterministic ID generator (prefix1, prefix2, ...)
// so tests can reference generated records by predictable IDs.
func NewTestID(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// buildMatchID is shared across BuildMatch calls so matches built in the
// same test process never collide on ID.
var buildMatchID = NewTestID("test-")

// BuildMatch creates an in-memory two-or-three team match via the real
// aggregate constructor. IDs are generated sequentially: the match first,
// then the teams in declaration order.
func BuildMatch(t *testing.T, playFormat string, enablePresses bool, formats []models.GameFormat, teamNames ...string) models.Match {
	t.Helper()

	req := models.CreateMatchRequest{
		Title:         "Test Match",
		GameFormats:   formats,
		PlayFormat:    playFormat,
		EnablePresses: enablePresses,
	}
	for _, name := range teamNames {
		req.Teams = append(req.Teams, models.CreateTeamRequest{Name: name, Initial: name[:1]})
	}

	match, err := scoring.NewMatch(req, buildMatchID)
	if err != nil {
		t.Fatalf("Failed to build test match: %v", err)
	}
	return match
}

// ScoreHole records strokes for every team on one 0-based hole, in team
// declaration order, through the real lifecycle path.
func ScoreHole(t *testing.T, match *models.Match, holeIndex int, strokes ...int) *models.PressOffer {
	t.Helper()

	if len(strokes) != len(match.Teams) {
		t.Fatalf("ScoreHole needs one stroke count per team (%d != %d)", len(strokes), len(match.Teams))
	}

	scores := make(map[string]*int, len(strokes))
	for i, s := range strokes {
		v := s
		scores[match.Teams[i].ID] = &v
	}

	offer, err := scoring.ApplyScores(match, holeIndex, scores)
	if err != nil {
		t.Fatalf("Failed to score hole %d: %v", holeIndex, err)
	}
	return offer
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
