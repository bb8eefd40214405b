// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer over the two tables: events and
participants.

# Drivers

The store runs on either modernc.org/sqlite (default, pure Go, also used by
the tests) or lib/pq, chosen by Config.DatabaseType. Queries use $N
placeholders, which both drivers accept. SQLite is capped at one open
connection to avoid write-lock errors under concurrent registrations.

# Invariants

Two cross-request invariants live here, enforced by constraints rather than
application pre-checks:

  - events.registration_token is UNIQUE; CreateEvent retries with a fresh
    token on the (implausible) collision.
  - participants has UNIQUE (event_id, email) with emails normalized to
    lowercase, so CreateParticipant's insert is itself the dedup check.
    Concurrent duplicate registrations get exactly one success.

DeleteEvent removes participants and the event in one transaction; orphaned
participant rows are unreachable under any failure.

# Startup Migration

BackfillTokens repairs legacy events that predate the token feature. It runs
once before the server accepts traffic and its failure is non-fatal.
*/
package store
