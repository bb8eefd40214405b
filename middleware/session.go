// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"

	"eventlink/auth"
	"eventlink/cliparse"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "eventlink_session"

type contextKey int

const sessionKey contextKey = 0

// RequireAdmin gates a handler behind a valid admin session. Every admin
// operation fails uniformly with 401 when the cookie is missing or invalid;
// on success the Session is injected into the request context.
func RequireAdmin(cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := SessionFromRequest(r, cfg)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Please log in to access this page.")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next(w, r.WithContext(ctx))
	}
}

// SessionFromRequest extracts and validates the session cookie.
func SessionFromRequest(r *http.Request, cfg cliparse.Config) (auth.Session, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return auth.Session{}, auth.ErrInvalidSession
	}
	return auth.ParseSessionToken(cookie.Value, cfg.SessionSecret)
}

// SessionFrom returns the Session placed in the context by RequireAdmin.
func SessionFrom(ctx context.Context) (auth.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(auth.Session)
	return sess, ok
}

// SetSessionCookie attaches a signed session token to the response.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(auth.SessionTTL.Seconds()),
	})
}

// ClearSessionCookie expires the session cookie unconditionally.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
