// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"

	"github.com/Lorcania11/presstracker/models"
)

// Match-play status strings
const (
	StatusAllSquare      = "All Square"
	StatusInvalidMatchup = "Invalid matchup"
)

// EvaluateMatchPlay scores a two-team match over the given hole range.
// Holes missing a stroke count for either team are excluded entirely; they
// count neither as a win nor a halve. The range size is len(holes), so
// callers pass the full window (complete or not) in ascending hole order.
//
// A team count other than 2 yields a degenerate zero result with
// StatusInvalidMatchup instead of an error; callers must check the status
// before trusting the counts.
func EvaluateMatchPlay(teams []models.Team, holes []models.Hole) models.MatchPlayResult {
	if len(teams) != 2 {
		return models.MatchPlayResult{
			HolesRemaining: len(holes),
			Status:         StatusInvalidMatchup,
		}
	}

	team1, team2 := teams[0], teams[1]

	result := models.MatchPlayResult{}
	for _, hole := range holes {
		s1 := strokesFor(hole, team1.ID)
		s2 := strokesFor(hole, team2.ID)
		if s1 == nil || s2 == nil {
			continue
		}

		result.CompletedHoles++
		switch {
		case *s1 < *s2:
			result.Team1Wins++
		case *s2 < *s1:
			result.Team2Wins++
		default:
			result.HalvedHoles++
		}
	}

	result.HolesRemaining = len(holes) - result.CompletedHoles

	// Dormie rule: the match is over once the trailing team cannot catch up
	// even by winning every remaining hole.
	lead := result.Team1Wins - result.Team2Wins
	if lead < 0 {
		lead = -lead
	}
	result.IsMatchOver = lead > result.HolesRemaining

	switch {
	case result.Team1Wins == result.Team2Wins:
		result.Status = StatusAllSquare
	case result.Team1Wins > result.Team2Wins:
		result.Status = fmt.Sprintf("%s %d UP", team1.Name, lead)
	default:
		result.Status = fmt.Sprintf("%s %d UP", team2.Name, lead)
	}

	return result
}

// strokesFor returns the recorded stroke count for a team on a hole, or nil
// when the team has no score there.
func strokesFor(hole models.Hole, teamID string) *int {
	for _, hs := range hole.Scores {
		if hs.TeamID == teamID {
			return hs.Score
		}
	}
	return nil
}
