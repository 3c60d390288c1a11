// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Press Tracker API server.

Press Tracker is a golf scorecard service for side-bet ("press") matches:
hole-by-hole score entry, match-play and stroke-play standings, and a press
ledger settled against the scorecard in real time.

# Starting the Server

The server runs on a local sqlite file by default:

	go run main.go

Or against PostgreSQL:

	go run main.go -t postgres -d "postgres://..."

A .env file in the working directory is loaded if present.

# Configuration

  - PORT (-p): Server port (default: 3519)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string, or sqlite file path
    (default: presstracker.db)
  - CORS_ORIGIN (-c): Allowed CORS origin (default: reflect the
    request origin)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (matches, scores, presses, summaries)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - scoring: Evaluators, press rules, settlement, match lifecycle
  - storage: Single-row JSON persistence of the match collection
  - db: Schema creation
  - cliparse: Flags and environment configuration

# Logging

Structured logging via log/slog: human-readable text on a terminal,
JSON when output is piped.
*/
package main
