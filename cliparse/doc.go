// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4217)
  - DatabaseURL: sqlite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - TransitionDelay: navigation transition delay (default: 800ms)
  - SelfProviderID: provider record the provider dashboard manages (default: "1")

# CLI Flags

	-p               Server port
	-d               Database URL / sqlite file path
	-t               Database type
	--transition-ms  Transition delay in milliseconds
	--self-provider  Self provider id

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	TRANSITION_MS    → --transition-ms
	SELF_PROVIDER_ID → --self-provider

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error when DATABASE_TYPE is not sqlite/postgres, when
postgres is selected without a database URL, or when numeric values do not
parse. The sqlite backend defaults its path to servizo.db so a bare binary
runs with zero configuration.
*/
package cliparse
