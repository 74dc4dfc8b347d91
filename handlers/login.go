// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/abekoci/election-map/auth"
	"github.com/abekoci/election-map/cliparse"
	"github.com/abekoci/election-map/middleware"
	"github.com/abekoci/election-map/models"
)

type LoginHandler struct {
	cfg cliparse.Config
}

func NewLoginHandler(cfg cliparse.Config) *LoginHandler {
	return &LoginHandler{cfg: cfg}
}

// Login handles POST /api/login
// Verifies the entry password and hands out a session token. The
// results engine never sees credentials; this gate only fronts the
// editor flow.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.Password == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.LoginResponse{
			Authenticated: false,
			Error:         "Password missing",
		})
		return
	}

	if !auth.VerifyPassword(req.Password, h.cfg.EntryPassword) {
		slog.Info("login failed: incorrect password")
		middleware.JSONResponse(w, http.StatusUnauthorized, models.LoginResponse{Authenticated: false})
		return
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.LoginResponse{
			Authenticated: false,
			Error:         "Server error during login",
		})
		return
	}

	slog.Info("login successful")
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Authenticated: true,
		Token:         token,
	})
}
