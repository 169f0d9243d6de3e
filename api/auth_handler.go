package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/myazici/portfolio-site-backend/auth"
	"github.com/myazici/portfolio-site-backend/errs"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	gate          *auth.Gate
	secureCookies bool
}

func newAuthHandler(gate *auth.Gate, secureCookies bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		gate:          gate,
		secureCookies: secureCookies,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// login verifies the shared admin password and sets the session cookie.
// Wrong, missing, or unconfigurable passwords all collapse into the same 401.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		if !h.gate.VerifyPassword(req.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		token, err := h.gate.IssueToken(time.Now())
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue session token")
			h.responder.WriteError(w, errs.NewServiceUnconfiguredError("session signing"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(h.gate.SessionTTL().Seconds()),
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{"status": "ok"})
	}
}

// logout clears the session cookie.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{"status": "ok"})
	}
}
