// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3519)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - DatabaseURL: Connection string, or sqlite file path
    (default: presstracker.db)
  - CORSOrigin: Allowed CORS origin (default: reflect the request origin)

# CLI Flags

	-p  Server port
	-d  Database URL or sqlite file path
	-t  Database type
	-c  Allowed CORS origin

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGIN   → -c

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error for an unknown database type, and postgres
requires an explicit database URL. sqlite defaults to a local file.
*/
package cliparse
