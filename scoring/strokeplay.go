// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"

	"github.com/Lorcania11/presstracker/models"
)

// Stroke-play status strings
const (
	StatusTied       = "tied"
	StatusNoScores   = "Scores not available"
	statusLeadsByFmt = "%s leads by %d"
)

// EvaluateStrokePlay totals each team's strokes over the completed holes in
// the given range. A hole counts only when every team in the match has a
// score on it. The leader is the team with the strictly lowest total; a tie
// for the lead produces no leader. allHoles is the match's full 18-hole
// ledger, used solely for the whole-match completeness flag.
func EvaluateStrokePlay(teams []models.Team, holes []models.Hole, allHoles []models.Hole) models.StrokePlayResult {
	result := models.StrokePlayResult{
		Teams:      make([]models.StrokePlayTeamResult, 0, len(teams)),
		IsComplete: allComplete(teams, allHoles),
	}

	for _, team := range teams {
		tr := models.StrokePlayTeamResult{TeamID: team.ID, TeamName: team.Name}
		for _, hole := range holes {
			if !holeComplete(hole, teams) {
				continue
			}
			if s := strokesFor(hole, team.ID); s != nil {
				tr.TotalScore += *s
				tr.CompletedHoles++
			}
		}
		if tr.CompletedHoles > 0 {
			tr.Average = float64(tr.TotalScore) / float64(tr.CompletedHoles)
		}
		result.Teams = append(result.Teams, tr)
	}

	scored := 0
	for _, tr := range result.Teams {
		if tr.CompletedHoles > 0 {
			scored++
		}
	}
	if scored < 2 {
		result.Status = StatusNoScores
		return result
	}

	// Lowest total leads; a shared lowest total means no leader.
	leader := result.Teams[0]
	tiedLead := false
	for _, tr := range result.Teams[1:] {
		switch {
		case tr.TotalScore < leader.TotalScore:
			leader = tr
			tiedLead = false
		case tr.TotalScore == leader.TotalScore:
			tiedLead = true
		}
	}

	if tiedLead {
		result.Status = StatusTied
		return result
	}

	margin := 0
	for _, tr := range result.Teams {
		if tr.TeamID != leader.TeamID {
			if d := tr.TotalScore - leader.TotalScore; margin == 0 || d < margin {
				margin = d
			}
		}
	}

	leaderID := leader.TeamID
	result.TeamLeading = &leaderID
	result.LeadingBy = margin
	result.Status = fmt.Sprintf(statusLeadsByFmt, leader.TeamName, margin)
	return result
}

// holeComplete reports whether every team has a stroke count on the hole.
// Completeness is derived from the scores rather than the stored flag so
// engines stay correct on stale or hand-edited records.
func holeComplete(hole models.Hole, teams []models.Team) bool {
	if len(teams) == 0 {
		return false
	}
	for _, team := range teams {
		if strokesFor(hole, team.ID) == nil {
			return false
		}
	}
	return true
}

// allComplete reports whether every hole of the full round is complete.
func allComplete(teams []models.Team, allHoles []models.Hole) bool {
	if len(allHoles) < models.HolesPerRound {
		return false
	}
	for _, hole := range allHoles {
		if !holeComplete(hole, teams) {
			return false
		}
	}
	return true
}
