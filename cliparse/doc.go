// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration for the Eventlink server.

Settings resolve in order: CLI flag, environment variable, development
default. Every knob has a default so a bare `go run .` works, but the
defaults are insecure and must be overridden in any real deployment.

	Flag             Env               Default
	-p               PORT              5000
	-d               DATABASE_URL      events.db
	-t               DATABASE_TYPE     sqlite
	-base-url        BASE_URL          http://localhost:<port>
	-admin-user      ADMIN_USERNAME    admin
	-admin-pass      ADMIN_PASSWORD    admin123
	-session-secret  SESSION_SECRET    dev-secret-key-change-in-production
	-debug           DEBUG             false

Config.UsingDefaultSecrets lets main warn loudly when the password or
session secret was not overridden.
*/
package cliparse
