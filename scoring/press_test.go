// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"testing"

	"github.com/Lorcania11/presstracker/models"
)

func TestNormalizePressType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"front9", models.PressTypeFront9},
		{"back9", models.PressTypeBack9},
		{"total18", models.PressTypeTotal18},
		{"front", models.PressTypeFront9},
		{"back", models.PressTypeBack9},
		{"total", models.PressTypeTotal18},
		{"", ""},
		{"middle9", ""},
		{"FRONT9", ""},
	}

	for _, tt := range tests {
		if got := NormalizePressType(tt.in); got != tt.want {
			t.Errorf("NormalizePressType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSegmentBounds(t *testing.T) {
	tests := []struct {
		pressType string
		start     int
		end       int
		rangeLo   int
		rangeHi   int
	}{
		{models.PressTypeFront9, 0, 8, 0, 8},
		{models.PressTypeBack9, 9, 17, 9, 17},
		{models.PressTypeTotal18, 0, 17, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.pressType, func(t *testing.T) {
			if got := SegmentStart(tt.pressType); got != tt.start {
				t.Errorf("SegmentStart = %d, want %d", got, tt.start)
			}
			if got := SegmentEnd(tt.pressType); got != tt.end {
				t.Errorf("SegmentEnd = %d, want %d", got, tt.end)
			}
			lo, hi := ValidStartRange(tt.pressType)
			if lo != tt.rangeLo || hi != tt.rangeHi {
				t.Errorf("ValidStartRange = %d-%d, want %d-%d", lo, hi, tt.rangeLo, tt.rangeHi)
			}
		})
	}
}

func TestIsOriginalBet(t *testing.T) {
	tests := []struct {
		pressType string
		holeIndex int
		want      bool
	}{
		{models.PressTypeFront9, 0, true},
		{models.PressTypeFront9, 3, false},
		{models.PressTypeBack9, 9, true},
		{models.PressTypeBack9, 12, false},
		{models.PressTypeTotal18, 0, true},
		{models.PressTypeTotal18, 5, false},
		{models.FormatBack, 9, true}, // alias normalized before the check
		{"bogus", 0, false},
	}

	for _, tt := range tests {
		press := models.Press{PressType: tt.pressType, HoleIndex: tt.holeIndex}
		if got := IsOriginalBet(press); got != tt.want {
			t.Errorf("IsOriginalBet(%s@%d) = %v, want %v", tt.pressType, tt.holeIndex, got, tt.want)
		}
	}
}

func TestBetAmount(t *testing.T) {
	formats := []models.GameFormat{
		{Type: models.FormatFront, BetAmount: 20},
		{Type: models.FormatTotal, BetAmount: 50},
	}

	front := models.Press{PressType: models.PressTypeFront9}
	if got := BetAmount(front, formats); got != 20 {
		t.Errorf("BetAmount(front9) = %v, want 20", got)
	}

	total := models.Press{PressType: models.PressTypeTotal18}
	if got := BetAmount(total, formats); got != 50 {
		t.Errorf("BetAmount(total18) = %v, want 50", got)
	}

	// No back format enabled: the default amount backstops the press.
	back := models.Press{PressType: models.PressTypeBack9}
	if got := BetAmount(back, formats); got != DefaultBetAmount {
		t.Errorf("BetAmount(back9) = %v, want %v", got, DefaultBetAmount)
	}
}

func TestAmountLabel(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{10, "$10"},
		{2.5, "$2.5"},
		{1250, "$1,250"},
	}

	for _, tt := range tests {
		if got := AmountLabel(tt.amount); got != tt.want {
			t.Errorf("AmountLabel(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestSeedOriginalBets(t *testing.T) {
	newID := func() func() string {
		n := 0
		return func() string { n++; return string(rune('a' + n - 1)) }
	}

	t.Run("one original bet per format", func(t *testing.T) {
		match := models.Match{
			EnablePresses: true,
			Teams:         []models.Team{{ID: "t1"}, {ID: "t2"}},
			GameFormats: []models.GameFormat{
				{Type: models.FormatFront, BetAmount: 10},
				{Type: models.FormatBack, BetAmount: 10},
				{Type: models.FormatTotal, BetAmount: 25},
			},
		}
		SeedOriginalBets(&match, newID())

		if len(match.Presses) != 3 {
			t.Fatalf("got %d presses, want 3", len(match.Presses))
		}
		wantStart := map[string]int{
			models.PressTypeFront9:  0,
			models.PressTypeBack9:   9,
			models.PressTypeTotal18: 0,
		}
		for _, p := range match.Presses {
			if !p.IsOriginalBet {
				t.Errorf("press %s not flagged as original bet", p.PressType)
			}
			if p.HoleIndex != wantStart[p.PressType] {
				t.Errorf("press %s starts at %d, want %d", p.PressType, p.HoleIndex, wantStart[p.PressType])
			}
			if p.FromTeamID != "t1" || p.ToTeamID != "t2" {
				t.Errorf("press %s between %s and %s, want t1 and t2", p.PressType, p.FromTeamID, p.ToTeamID)
			}
			if p.ID == "" {
				t.Errorf("press %s has no ID", p.PressType)
			}
		}
	})

	t.Run("presses disabled", func(t *testing.T) {
		match := models.Match{
			Teams:       []models.Team{{ID: "t1"}, {ID: "t2"}},
			GameFormats: []models.GameFormat{{Type: models.FormatFront, BetAmount: 10}},
		}
		SeedOriginalBets(&match, newID())
		if len(match.Presses) != 0 {
			t.Errorf("got %d presses, want 0", len(match.Presses))
		}
	})

	t.Run("three teams bet nothing", func(t *testing.T) {
		match := models.Match{
			EnablePresses: true,
			Teams:         []models.Team{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}},
			GameFormats:   []models.GameFormat{{Type: models.FormatFront, BetAmount: 10}},
		}
		SeedOriginalBets(&match, newID())
		if len(match.Presses) != 0 {
			t.Errorf("got %d presses, want 0", len(match.Presses))
		}
	})
}
