// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"eventlink/cliparse"
	"eventlink/handlers"
	"eventlink/middleware"
	"eventlink/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	eventHandler := handlers.NewEventHandler(st, cfg)
	registrationHandler := handlers.NewRegistrationHandler(st, cfg)
	participantHandler := handlers.NewParticipantHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("GET /login", middleware.WithLogging(authHandler.SessionStatus))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(authHandler.Logout))

	// Admin operations (session required)
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg, next))
	}
	mux.HandleFunc("GET /dashboard", admin(eventHandler.Dashboard))
	mux.HandleFunc("POST /events/create", admin(eventHandler.CreateEvent))
	mux.HandleFunc("POST /events/{eventID}/delete", admin(eventHandler.DeleteEvent))
	mux.HandleFunc("GET /events/{eventID}/participants", admin(participantHandler.List))
	mux.HandleFunc("POST /events/{eventID}/participants/{participantID}/delete", admin(participantHandler.Delete))

	// Public registration (token is the capability, no auth)
	mux.HandleFunc("GET /register/{token}", middleware.WithLogging(registrationHandler.ShowEvent))
	mux.HandleFunc("POST /register/{token}", middleware.WithLogging(registrationHandler.Register))
	mux.HandleFunc("GET /success", middleware.WithLogging(registrationHandler.Success))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("eventlink API v1"))
	})

	return mux
}
