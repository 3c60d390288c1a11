// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"sort"

	"github.com/Lorcania11/presstracker/models"
)

// Settlement status strings
const (
	StatusHalved  = "Halved"
	StatusTiedCap = "Tied"
)

// SettlePress determines a press's current settlement state from the hole
// ledger. Each press is scored independently over its own window, from the
// press's start hole through the end of its segment. Other presses on the
// same pair or segment never interfere.
//
// Match play decides early once a lead is mathematically unbeatable. Stroke
// play has no early-clinch rule: a stroke-play press decides only when every
// hole in its window is complete. That asymmetry matches how the game is
// actually settled and is deliberate.
func SettlePress(match models.Match, press models.Press) models.PressWithResults {
	pt := NormalizePressType(press.PressType)
	result := models.PressWithResults{
		Press:       press,
		Amount:      BetAmount(press, match.GameFormats),
		HoleNumber:  press.HoleIndex + 1,
		Status:      StatusInvalidMatchup,
	}
	result.AmountLabel = AmountLabel(result.Amount)

	if pt == "" {
		return result
	}

	from, to := teamByID(match.Teams, press.FromTeamID), teamByID(match.Teams, press.ToTeamID)
	if from == nil || to == nil {
		return result
	}

	window := holeWindow(match.Holes, press.HoleIndex, SegmentEnd(pt))
	pair := []models.Team{*from, *to}

	if match.PlayFormat == models.PlayFormatStroke {
		settleStrokePlay(&result, pair, window, match.Holes)
	} else {
		settleMatchPlay(&result, pair, window)
	}
	return result
}

func settleMatchPlay(result *models.PressWithResults, pair []models.Team, window []models.Hole) {
	mp := EvaluateMatchPlay(pair, window)

	if !mp.IsMatchOver {
		// A finished window with level wins is a push, not a live bet.
		if mp.HolesRemaining == 0 && mp.Team1Wins == mp.Team2Wins {
			result.Status = StatusHalved
			return
		}
		// Still live: report the running lead without a winner.
		result.Status = mp.Status
		return
	}

	winner := pair[0]
	lead := mp.Team1Wins - mp.Team2Wins
	if lead < 0 {
		winner = pair[1]
		lead = -lead
	}

	if mp.HolesRemaining > 0 {
		result.Status = fmt.Sprintf("%s wins %d & %d", winner.Name, lead, mp.HolesRemaining)
	} else {
		result.Status = fmt.Sprintf("%s wins %d UP", winner.Name, lead)
	}
	result.Winner = &winner.ID
}

func settleStrokePlay(result *models.PressWithResults, pair []models.Team, window, allHoles []models.Hole) {
	sp := EvaluateStrokePlay(pair, window, allHoles)

	windowDone := true
	for _, hole := range window {
		if !holeComplete(hole, pair) {
			windowDone = false
			break
		}
	}

	if !windowDone {
		result.Status = sp.Status
		return
	}

	if sp.TeamLeading == nil {
		if sp.Status == StatusTied {
			result.Status = StatusTiedCap
		} else {
			result.Status = sp.Status
		}
		return
	}

	winner := teamByID(pair, *sp.TeamLeading)
	result.Status = fmt.Sprintf("%s wins by %d", winner.Name, sp.LeadingBy)
	result.Winner = sp.TeamLeading
}

// SettleAll settles every press on the match and groups the results by
// segment in front9/back9/total18 order, each group sorted for display:
// original bets first, then ascending by start hole.
func SettleAll(match models.Match) []models.PressSegmentSummary {
	byType := map[string][]models.PressWithResults{}
	for _, press := range match.Presses {
		pt := NormalizePressType(press.PressType)
		if pt == "" {
			continue
		}
		byType[pt] = append(byType[pt], SettlePress(match, press))
	}

	var segments []models.PressSegmentSummary
	for _, pt := range []string{models.PressTypeFront9, models.PressTypeBack9, models.PressTypeTotal18} {
		presses, ok := byType[pt]
		if !ok {
			continue
		}
		SortForDisplay(presses)
		segments = append(segments, models.PressSegmentSummary{PressType: pt, Presses: presses})
	}
	return segments
}

// SortForDisplay orders settled presses the way the summary shows them:
// original bets before player presses, then by start hole ascending.
func SortForDisplay(presses []models.PressWithResults) {
	sort.SliceStable(presses, func(i, j int) bool {
		oi, oj := IsOriginalBet(presses[i].Press), IsOriginalBet(presses[j].Press)
		if oi != oj {
			return oi
		}
		return presses[i].HoleNumber < presses[j].HoleNumber
	})
}

// holeWindow slices the ledger to the inclusive 0-based range [start, end],
// tolerating short ledgers.
func holeWindow(holes []models.Hole, start, end int) []models.Hole {
	if start < 0 {
		start = 0
	}
	if end >= len(holes) {
		end = len(holes) - 1
	}
	if start > end {
		return nil
	}
	return holes[start : end+1]
}

func teamByID(teams []models.Team, id string) *models.Team {
	for i := range teams {
		if teams[i].ID == id {
			return &teams[i]
		}
	}
	return nil
}
