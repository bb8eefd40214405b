// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and admin session handling.

# Registration Tokens

Every event gets an unguessable capability string at creation time:

	token, err := auth.GenerateRegistrationToken()

The token is URL-safe (base64 without padding) and carries 128 bits of
entropy, so the public link /register/{token} is the only way to reach an
event's registration form. Collisions are not checked here; the store's
UNIQUE constraint plus a bounded retry covers that.

# Admin Sessions

There is a single static admin identity configured at startup. A login
attempt is checked in constant time:

	err := auth.CheckCredentials(username, password, cfg.AdminUsername, cfg.AdminPassword)

Successful logins get an HS256-signed session token carried in an HTTP-only
cookie. The middleware parses it back into a Session value:

	sess, err := auth.ParseSessionToken(cookie.Value, cfg.SessionSecret)

# Surrogate IDs

Events and participants use random hex IDs from GenerateID rather than
database autoincrement, which keeps the SQL portable across the sqlite and
postgres drivers.
*/
package auth
