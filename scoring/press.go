// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/Lorcania11/presstracker/models"
)

// DefaultBetAmount backstops a press whose segment has no enabled game
// format. Hitting it means the match record is misconfigured; it is logged
// as such rather than treated as a designed behavior.
const DefaultBetAmount = 10

// NormalizePressType maps a press type to its canonical literal. The short
// aliases come from older match records; they are rewritten here, at
// ingestion, and never stored. Unknown values return "".
func NormalizePressType(pressType string) string {
	switch pressType {
	case models.PressTypeFront9, models.FormatFront:
		return models.PressTypeFront9
	case models.PressTypeBack9, models.FormatBack:
		return models.PressTypeBack9
	case models.PressTypeTotal18, models.FormatTotal:
		return models.PressTypeTotal18
	default:
		return ""
	}
}

// SegmentStart returns the 0-based first hole of a press type's segment.
func SegmentStart(pressType string) int {
	if NormalizePressType(pressType) == models.PressTypeBack9 {
		return 9
	}
	return 0
}

// SegmentEnd returns the 0-based last hole of a press type's segment.
func SegmentEnd(pressType string) int {
	if NormalizePressType(pressType) == models.PressTypeFront9 {
		return 8
	}
	return 17
}

// ValidStartRange returns the inclusive 0-based range a press of the given
// type may start on. Original bets sit at the range's low end; a player
// press may start anywhere within it.
func ValidStartRange(pressType string) (lo, hi int) {
	switch NormalizePressType(pressType) {
	case models.PressTypeBack9:
		return 9, 17
	default:
		return 0, 8
	}
}

// IsOriginalBet reports whether a press is a format's seed wager: its start
// hole equals the segment's first hole for its press type. This is the one
// original-bet predicate in the codebase; the stored flag on a press is a
// cache of this, never the truth source.
func IsOriginalBet(press models.Press) bool {
	pt := NormalizePressType(press.PressType)
	if pt == "" {
		return false
	}
	return press.HoleIndex == SegmentStart(pt)
}

// FormatTypeFor maps a press type to the game format family it bets on.
func FormatTypeFor(pressType string) string {
	switch NormalizePressType(pressType) {
	case models.PressTypeFront9:
		return models.FormatFront
	case models.PressTypeBack9:
		return models.FormatBack
	case models.PressTypeTotal18:
		return models.FormatTotal
	default:
		return ""
	}
}

// BetAmount resolves a press's wager from the matching game format, falling
// back to DefaultBetAmount when the segment has no enabled format.
func BetAmount(press models.Press, formats []models.GameFormat) float64 {
	want := FormatTypeFor(press.PressType)
	for _, f := range formats {
		if f.Type == want {
			return f.BetAmount
		}
	}
	slog.Warn("no game format for press; using default bet amount",
		"press_id", press.ID,
		"press_type", press.PressType,
	)
	return DefaultBetAmount
}

// AmountLabel renders a wager for display, e.g. "$10" or "$1,250".
func AmountLabel(amount float64) string {
	return "$" + humanize.CommafWithDigits(amount, 2)
}

// SeedOriginalBets creates the one original bet per enabled game format for
// a two-team match. Matches with more than two teams bet nothing; the
// press workflow is a pairwise concept.
func SeedOriginalBets(match *models.Match, newID func() string) {
	if !match.EnablePresses || len(match.Teams) != 2 {
		return
	}
	for _, f := range match.GameFormats {
		pt := NormalizePressType(f.Type)
		if pt == "" {
			continue
		}
		match.Presses = append(match.Presses, models.Press{
			ID:            newID(),
			FromTeamID:    match.Teams[0].ID,
			ToTeamID:      match.Teams[1].ID,
			HoleIndex:     SegmentStart(pt),
			PressType:     pt,
			IsOriginalBet: true,
		})
	}
}
