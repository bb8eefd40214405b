// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventlink/auth"
	"eventlink/cliparse"
	"eventlink/middleware"
	"eventlink/models"
)

type AuthHandler struct {
	cfg cliparse.Config
}

func NewAuthHandler(cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if isJSON(r) {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
			return
		}
		req.Username = r.FormValue("username")
		req.Password = r.FormValue("password")
	}

	req.Username = strings.TrimSpace(req.Username)

	if err := auth.CheckCredentials(req.Username, req.Password, h.cfg.AdminUsername, h.cfg.AdminPassword); err != nil {
		slog.Info("login rejected", "username", req.Username)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	token, err := auth.NewSessionToken(req.Username, h.cfg.SessionSecret, time.Now())
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	middleware.SetSessionCookie(w, token)

	slog.Info("admin logged in", "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Username: req.Username,
		Message:  "Welcome back, Admin!",
	})
}

// SessionStatus handles GET /login
// The JSON analogue of "redirect to dashboard if already logged in": it
// reports whether the caller holds a valid session.
func (h *AuthHandler) SessionStatus(w http.ResponseWriter, r *http.Request) {
	sess, err := middleware.SessionFromRequest(r, h.cfg)
	if err != nil {
		middleware.JSONResponse(w, http.StatusOK, models.SessionStatusResponse{Authenticated: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionStatusResponse{
		Authenticated: true,
		Username:      sess.Subject,
	})
}

// Logout handles GET /logout
// Clears the session unconditionally; no valid session is required.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "You have been logged out successfully.",
	})
}
