// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"fmt"
	"time"

	"github.com/Lorcania11/presstracker/models"
)

var (
	ErrTeamCount   = errors.New("a match needs 2 or 3 teams")
	ErrFormatCount = errors.New("a match needs 1 to 3 game formats")
)

// NewMatch builds a fresh match aggregate from setup input: teams with
// empty 18-hole ledgers, the enabled game formats, and, for two-team
// matches with presses enabled, one seeded original bet per format.
func NewMatch(req models.CreateMatchRequest, newID func() string) (models.Match, error) {
	if len(req.Teams) < 2 || len(req.Teams) > 3 {
		return models.Match{}, ErrTeamCount
	}
	if len(req.GameFormats) < 1 || len(req.GameFormats) > 3 {
		return models.Match{}, ErrFormatCount
	}

	playFormat := req.PlayFormat
	if playFormat == "" {
		playFormat = models.PlayFormatMatch
	}
	if playFormat != models.PlayFormatMatch && playFormat != models.PlayFormatStroke {
		return models.Match{}, fmt.Errorf("unknown play format %q", req.PlayFormat)
	}

	seen := map[string]bool{}
	for _, f := range req.GameFormats {
		if NormalizePressType(f.Type) == "" {
			return models.Match{}, fmt.Errorf("unknown game format type %q", f.Type)
		}
		if seen[NormalizePressType(f.Type)] {
			return models.Match{}, fmt.Errorf("duplicate game format %q", f.Type)
		}
		seen[NormalizePressType(f.Type)] = true
	}

	match := models.Match{
		ID:            newID(),
		Title:         req.Title,
		GameFormats:   req.GameFormats,
		Presses:       []models.Press{},
		PlayFormat:    playFormat,
		EnablePresses: req.EnablePresses,
		CreatedAt:     time.Now().UTC(),
	}

	for _, t := range req.Teams {
		match.Teams = append(match.Teams, models.Team{
			ID:      newID(),
			Name:    t.Name,
			Color:   t.Color,
			Initial: t.Initial,
			Scores:  make([]*int, models.HolesPerRound),
		})
	}

	for i := 0; i < models.HolesPerRound; i++ {
		hole := models.Hole{Number: i + 1}
		for _, team := range match.Teams {
			hole.Scores = append(hole.Scores, models.HoleScore{TeamID: team.ID})
		}
		match.Holes = append(match.Holes, hole)
	}

	SeedOriginalBets(&match, newID)
	return match, nil
}

// Standings evaluates every enabled segment over its full hole range using
// the match's play format. Partial and sparse hole data never errors; the
// evaluators fold it into their status text.
func Standings(match models.Match) models.StandingsResponse {
	resp := models.StandingsResponse{
		MatchID:    match.ID,
		PlayFormat: match.PlayFormat,
	}

	for _, f := range match.GameFormats {
		pt := NormalizePressType(f.Type)
		if pt == "" {
			continue
		}
		window := holeWindow(match.Holes, SegmentStart(pt), SegmentEnd(pt))
		standing := models.SegmentStanding{PressType: pt}
		if match.PlayFormat == models.PlayFormatStroke {
			sp := EvaluateStrokePlay(match.Teams, window, match.Holes)
			standing.StrokePlay = &sp
		} else {
			mp := EvaluateMatchPlay(match.Teams, window)
			standing.MatchPlay = &mp
		}
		resp.Segments = append(resp.Segments, standing)
	}
	return resp
}
