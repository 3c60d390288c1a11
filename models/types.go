package models

import "time"

// Play format constants
const (
	PlayFormatMatch  = "match"
	PlayFormatStroke = "stroke"
)

// Canonical press type constants. The legacy aliases ("front", "back",
// "total") are accepted at ingestion and normalized to these; they are
// never stored.
const (
	PressTypeFront9  = "front9"
	PressTypeBack9   = "back9"
	PressTypeTotal18 = "total18"
)

// Game format type constants
const (
	FormatFront = "front"
	FormatBack  = "back"
	FormatTotal = "total"
)

// HolesPerRound is the fixed length of every score ledger.
const HolesPerRound = 18

// Request types

type CreateTeamRequest struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Initial string `json:"initial"`
}

type CreateMatchRequest struct {
	Title         string              `json:"title"`
	Teams         []CreateTeamRequest `json:"teams"`
	GameFormats   []GameFormat        `json:"gameFormats"`
	PlayFormat    string              `json:"playFormat"`
	EnablePresses bool                `json:"enablePresses"`
}

// teamId -> numeric string as typed on the score entry screen.
// Empty string clears the score for that team.
type SubmitScoresRequest struct {
	Scores map[string]string `json:"scores"`
}

// The press wizard's output: a completed press minus its ID.
type CreatePressRequest struct {
	FromTeamID string `json:"fromTeamId"`
	ToTeamID   string `json:"toTeamId"`
	HoleIndex  int    `json:"holeIndex"`
	PressType  string `json:"pressType"`
}

type MarkCompleteRequest struct {
	IsComplete bool `json:"isComplete"`
}

// Response types

type SubmitScoresResponse struct {
	Match      Match       `json:"match"`
	Hole       Hole        `json:"hole"`
	PressOffer *PressOffer `json:"pressOffer,omitempty"`
}

type PressOfferOption struct {
	PressType string  `json:"pressType"`
	Status    string  `json:"status"`
	BetAmount float64 `json:"betAmount"`
}

// PressOffer is presented when a hole completes and the match is eligible
// for press betting. Options carry the running status of each enabled
// segment so the user can see where they stand before doubling.
type PressOffer struct {
	HoleIndex int                `json:"holeIndex"`
	Options   []PressOfferOption `json:"options"`
}

type SegmentStanding struct {
	PressType  string            `json:"pressType"`
	MatchPlay  *MatchPlayResult  `json:"matchPlay,omitempty"`
	StrokePlay *StrokePlayResult `json:"strokePlay,omitempty"`
}

type StandingsResponse struct {
	MatchID    string            `json:"matchId"`
	PlayFormat string            `json:"playFormat"`
	Segments   []SegmentStanding `json:"segments"`
}

type PressSegmentSummary struct {
	PressType string             `json:"pressType"`
	Presses   []PressWithResults `json:"presses"`
}

type PressSummaryResponse struct {
	MatchID  string                `json:"matchId"`
	Segments []PressSegmentSummary `json:"segments"`
}

// Error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Initial string `json:"initial"`
	// Scores[i] is the stroke count for hole i (0-indexed), nil if unplayed.
	// Mirrors the hole ledger; the hole ledger is authoritative.
	Scores []*int `json:"scores"`
}

type HoleScore struct {
	TeamID string `json:"teamId"`
	Score  *int   `json:"score"`
}

type Hole struct {
	Number     int         `json:"number"` // 1..18
	Scores     []HoleScore `json:"scores"`
	IsComplete bool        `json:"isComplete"`
}

type GameFormat struct {
	Type      string  `json:"type"` // front | back | total
	BetAmount float64 `json:"betAmount"`
}

type Press struct {
	ID         string `json:"id"`
	FromTeamID string `json:"fromTeamId"`
	ToTeamID   string `json:"toTeamId"`
	// 0-based hole the press starts on. Original bets sit at their
	// segment's first hole; player presses may start mid-segment.
	HoleIndex     int    `json:"holeIndex"`
	PressType     string `json:"pressType"`
	IsOriginalBet bool   `json:"isOriginalBet"`
}

type Match struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Teams         []Team       `json:"teams"`
	Holes         []Hole       `json:"holes"`
	GameFormats   []GameFormat `json:"gameFormats"`
	Presses       []Press      `json:"presses"`
	PlayFormat    string       `json:"playFormat"`
	EnablePresses bool         `json:"enablePresses"`
	// CurrentHole is the 0-based hole the scoring flow is on; 18 means the
	// round is finished. PressPending is set between a hole completing and
	// the press decision being made.
	CurrentHole  int       `json:"currentHole"`
	PressPending bool      `json:"pressPending"`
	CreatedAt    time.Time `json:"createdAt"`
	// IsComplete is a user-set label, not derived from hole data.
	IsComplete bool `json:"isComplete"`
}

// Evaluator result types

type MatchPlayResult struct {
	Team1Wins      int    `json:"team1Wins"`
	Team2Wins      int    `json:"team2Wins"`
	HalvedHoles    int    `json:"halvedHoles"`
	CompletedHoles int    `json:"completedHoles"`
	HolesRemaining int    `json:"holesRemaining"`
	IsMatchOver    bool   `json:"isMatchOver"`
	Status         string `json:"status"`
}

type StrokePlayTeamResult struct {
	TeamID         string  `json:"teamId"`
	TeamName       string  `json:"teamName"`
	TotalScore     int     `json:"totalScore"`
	CompletedHoles int     `json:"completedHoles"`
	Average        float64 `json:"average"`
}

type StrokePlayResult struct {
	Teams       []StrokePlayTeamResult `json:"teams"`
	TeamLeading *string                `json:"teamLeading,omitempty"` // team ID
	LeadingBy   int                    `json:"leadingBy,omitempty"`
	Status      string                 `json:"status"`
	// IsComplete reports whether all 18 holes of the match are complete,
	// regardless of the evaluated range.
	IsComplete bool `json:"isComplete"`
}

// PressWithResults is a press plus its settlement state. This is the sole
// input the press summary display consumes.
type PressWithResults struct {
	Press
	Status      string  `json:"status"`
	Winner      *string `json:"winner"` // team ID, nil while undecided
	Amount      float64 `json:"amount"`
	AmountLabel string  `json:"amountLabel"`
	HoleNumber  int     `json:"holeNumber"` // 1-based start hole
}
