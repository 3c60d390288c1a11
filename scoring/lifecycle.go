// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Lorcania11/presstracker/models"
)

var (
	ErrHoleOutOfRange  = errors.New("hole index out of range")
	ErrUnknownTeam     = errors.New("unknown team")
	ErrNoPendingOffer  = errors.New("no press decision pending")
	ErrNotNumeric      = errors.New("score must be numeric")
	ErrPressNotAllowed = errors.New("presses require exactly 2 teams")
)

// ParseScore converts raw score-entry text to a stroke count. This is the
// single place user text becomes a number; past this boundary a score is
// always *int. Empty text clears the score (nil). Anything non-numeric or
// non-positive is rejected.
func ParseScore(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	return &n, nil
}

// ApplyScores records parsed stroke counts for one hole, keeping the team
// score mirrors and the hole's completeness flag in sync, and drives the
// press lifecycle:
//
//	Unscored -> Scored(incomplete) -> Scored(complete)
//
// When the current hole completes and the match is press-eligible, the
// match enters the press-pending state and the returned offer carries the
// running status of each enabled segment. Without an offer the flow
// advances to the next hole immediately. Edits to earlier holes update
// scores without touching the flow state.
func ApplyScores(match *models.Match, holeIndex int, scores map[string]*int) (*models.PressOffer, error) {
	if holeIndex < 0 || holeIndex >= len(match.Holes) {
		return nil, ErrHoleOutOfRange
	}
	for teamID := range scores {
		if teamByID(match.Teams, teamID) == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
		}
	}

	hole := &match.Holes[holeIndex]
	for teamID, score := range scores {
		setHoleScore(hole, teamID, score)
		for i := range match.Teams {
			if match.Teams[i].ID == teamID {
				ensureScoreLen(&match.Teams[i])
				match.Teams[i].Scores[holeIndex] = score
			}
		}
	}
	hole.IsComplete = holeComplete(*hole, match.Teams)

	if holeIndex != match.CurrentHole || !hole.IsComplete {
		return nil, nil
	}

	offer := BuildPressOffer(*match, holeIndex)
	if offer == nil {
		AdvanceHole(match)
		return nil, nil
	}
	match.PressPending = true
	return offer, nil
}

// BuildPressOffer computes the press decision shown after a hole completes:
// one option per enabled format, carrying the running status of that
// segment up to and including the completed hole. Returns nil when the
// match is not press-eligible: presses disabled, or not exactly 2 teams,
// since press betting is pairwise only.
func BuildPressOffer(match models.Match, holeIndex int) *models.PressOffer {
	if !match.EnablePresses || len(match.Teams) != 2 {
		return nil
	}

	offer := &models.PressOffer{HoleIndex: holeIndex}
	for _, f := range match.GameFormats {
		pt := NormalizePressType(f.Type)
		if pt == "" {
			continue
		}
		lo, hi := ValidStartRange(pt)
		if holeIndex < lo || holeIndex > hi {
			continue
		}

		window := holeWindow(match.Holes, SegmentStart(pt), holeIndex)
		var status string
		if match.PlayFormat == models.PlayFormatStroke {
			status = EvaluateStrokePlay(match.Teams, window, match.Holes).Status
		} else {
			status = EvaluateMatchPlay(match.Teams, window).Status
		}

		offer.Options = append(offer.Options, models.PressOfferOption{
			PressType: pt,
			Status:    status,
			BetAmount: f.BetAmount,
		})
	}

	if len(offer.Options) == 0 {
		return nil
	}
	return offer
}

// AcceptPress resolves a pending press decision by recording the press,
// then advances the flow. The press must already be validated.
func AcceptPress(match *models.Match, press models.Press) {
	match.Presses = append(match.Presses, press)
	if match.PressPending {
		match.PressPending = false
		AdvanceHole(match)
	}
}

// DeclinePress resolves a pending press decision without creating a press.
// Declining on the final hole leaves the flow terminal.
func DeclinePress(match *models.Match) error {
	if !match.PressPending {
		return ErrNoPendingOffer
	}
	match.PressPending = false
	AdvanceHole(match)
	return nil
}

// AdvanceHole moves the scoring flow to the next hole. CurrentHole equal to
// the ledger length marks the round finished.
func AdvanceHole(match *models.Match) {
	if match.CurrentHole < len(match.Holes) {
		match.CurrentHole++
	}
}

// RoundFinished reports whether the scoring flow has advanced past the
// last hole.
func RoundFinished(match models.Match) bool {
	return match.CurrentHole >= len(match.Holes)
}

// ValidatePress checks a wizard-produced press against the match. It
// enforces the pairwise-only rule, distinct known teams, a recognized press
// type, and a start hole within the segment's valid range. The returned
// press has its type normalized to the canonical literal and its
// original-bet flag derived.
func ValidatePress(match models.Match, press models.Press) (models.Press, error) {
	if len(match.Teams) != 2 {
		return models.Press{}, ErrPressNotAllowed
	}
	pt := NormalizePressType(press.PressType)
	if pt == "" {
		return models.Press{}, fmt.Errorf("unknown press type %q", press.PressType)
	}
	press.PressType = pt

	if press.FromTeamID == press.ToTeamID {
		return models.Press{}, errors.New("a team cannot press itself")
	}
	if teamByID(match.Teams, press.FromTeamID) == nil {
		return models.Press{}, fmt.Errorf("%w: %s", ErrUnknownTeam, press.FromTeamID)
	}
	if teamByID(match.Teams, press.ToTeamID) == nil {
		return models.Press{}, fmt.Errorf("%w: %s", ErrUnknownTeam, press.ToTeamID)
	}

	lo, hi := ValidStartRange(pt)
	if press.HoleIndex < lo || press.HoleIndex > hi {
		return models.Press{}, fmt.Errorf("hole index %d outside %s range %d-%d",
			press.HoleIndex, pt, lo, hi)
	}

	press.IsOriginalBet = IsOriginalBet(press)
	return press, nil
}

func setHoleScore(hole *models.Hole, teamID string, score *int) {
	for i := range hole.Scores {
		if hole.Scores[i].TeamID == teamID {
			hole.Scores[i].Score = score
			return
		}
	}
	hole.Scores = append(hole.Scores, models.HoleScore{TeamID: teamID, Score: score})
}

func ensureScoreLen(team *models.Team) {
	for len(team.Scores) < models.HolesPerRound {
		team.Scores = append(team.Scores, nil)
	}
}
