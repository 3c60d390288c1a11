// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Press Tracker API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store)

# Endpoints

Health:

	GET /health

Match lifecycle:

	POST   /matches               - Create match
	GET    /matches               - List matches
	DELETE /matches               - Clear all matches
	GET    /matches/{id}          - Get match
	DELETE /matches/{id}          - Delete match
	POST   /matches/{id}/complete - Set completion flag

Score entry:

	POST /matches/{id}/holes/{hole}/scores - Record hole scores (hole is 1-18)

Press lifecycle:

	POST /matches/{id}/presses         - Create (accept) a press
	POST /matches/{id}/presses/decline - Decline the pending offer

Standings and settlement:

	GET /matches/{id}/standings - Per-segment standings
	GET /matches/{id}/presses   - Settled presses grouped by segment
*/
package router
