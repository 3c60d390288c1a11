// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements the game rules: evaluators, press rules,
settlement, and the match lifecycle.

# Evaluators

Pure functions from teams and a hole range to a result:

	mp := scoring.EvaluateMatchPlay(teams, holes)
	sp := scoring.EvaluateStrokePlay(teams, holes, match.Holes)

Match play counts holes won per team, excluding any hole missing a score
for either team. A match is over once the lead exceeds the holes
remaining. Stroke play totals strokes over fully-scored holes; the
strictly lowest total leads. Stroke play never decides early.

# Press Rules

A press is a side bet between two teams over a segment of the round:

	front9:  holes 1-9,  may start on holes 1-9
	back9:   holes 10-18, may start on holes 10-18
	total18: holes 1-18, may start on holes 1-9

A press starting on its segment's first hole is the original bet; one is
seeded per enabled game format at match creation. Presses exist only in
two-team matches.

# Settlement

Each press settles independently over its own window, from its start
hole to the end of its segment:

	settled := scoring.SettlePress(match, press)
	segments := scoring.SettleAll(match)

A live press carries the evaluator's running status and no winner; a
decided press carries a winner and a result string ("Alpha wins 3 & 1").

# Lifecycle

ApplyScores drives the hole flow. Completing the current hole of a
press-eligible match produces a press offer and parks the flow until the
offer is accepted (AcceptPress) or declined (DeclinePress); otherwise
the flow advances immediately. Edits to earlier holes update scores
without touching the flow.

ParseScore is the single boundary where raw score-entry text becomes a
stroke count; empty text clears a score.
*/
package scoring
