// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateMatchRequest: title, teams, game formats, play format
  - SubmitScoresRequest: raw score text per team ID
  - CreatePressRequest: the press wizard's output
  - MarkCompleteRequest: completion flag

# Response Types

Types for JSON responses:

  - SubmitScoresResponse: updated match, hole, optional press offer
  - PressOffer: press decision shown when a hole completes
  - StandingsResponse: one standing per enabled segment
  - PressSummaryResponse: settled presses grouped by segment
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Match: the aggregate of teams, holes, formats, presses, and flow state
  - Team: name, color, initial, and an 18-slot score mirror
  - Hole: per-team scores plus a completeness flag
  - GameFormat: enabled segment (front/back/total) and its wager
  - Press: a side bet between two teams starting on a hole

# Score Representation

A score is always *int past the parsing boundary: nil means unplayed,
a value is always >= 1. Team score mirrors duplicate the hole ledger
for display; the hole ledger is authoritative.

# Press Types

Canonical press type literals are "front9", "back9", and "total18".
The short aliases "front", "back", and "total" (used by game formats
and older records) are normalized at ingestion and never stored.
*/
package models
