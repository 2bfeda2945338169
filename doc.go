// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Servizo state server.

Servizo is a local-services marketplace. This server owns the
application's client state (navigation, role, theme, filters, shortlist,
and the provider catalog) and keeps the URL path synchronized with the
active view the way the browser app does.

# Starting the Server

With defaults (sqlite file servizo.db, port 4217):

	go run main.go

Or against postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 4217)
  - DATABASE_URL (-d): sqlite file path or postgres connection string
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - TRANSITION_MS (--transition-ms): navigation transition delay (default: 800)
  - SELF_PROVIDER_ID (--self-provider): dashboard-managed record (default: "1")

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (state, shortlist, providers, dashboard)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - state: The application state controller
  - nav: The two-state navigation machine
  - routes: The view ↔ URL path codec
  - catalog: In-memory provider catalog
  - filter: Role gating, search predicates, and distance math
  - persist: Durable key/value storage (sqlite or postgres)
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
