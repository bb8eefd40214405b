// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"eventlink/cliparse"
)

// isJSON reports whether the request body should be decoded as JSON.
// Browser forms post application/x-www-form-urlencoded; API clients post
// JSON. Both are accepted everywhere a form exists.
func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// registrationURL computes the live public link for an event's token.
// Empty when the event has no token yet (legacy row awaiting backfill).
func registrationURL(cfg cliparse.Config, token string) string {
	if token == "" {
		return ""
	}
	return cfg.BaseURL + "/register/" + token
}
