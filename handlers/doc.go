// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Press Tracker API.

# Handler Types

Each handler is a struct with a storage dependency:

  - MatchHandler: Match lifecycle (create, list, delete, complete)
  - ScoreHandler: Hole-by-hole score entry
  - PressHandler: Press creation and decline
  - SummaryHandler: Standings and press settlement views

Handlers are created via constructor functions that accept *storage.Store:

	matchHandler := handlers.NewMatchHandler(store)

# Score Entry Flow

Scores arrive as raw text per team and are parsed exactly once:

	POST /matches/{id}/holes/{hole}/scores

Completing the match's current hole may attach a press offer to the
response. The flow then waits on one of:

	POST /matches/{id}/presses         - accept (body: press details)
	POST /matches/{id}/presses/decline - decline

before advancing to the next hole.

# Error Mapping

Domain errors map to HTTP statuses: unknown match or team is 404,
validation failures are 400, press decisions in the wrong state
(three-team press, decline with nothing pending) are 409.
*/
package handlers
