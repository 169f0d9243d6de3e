package api

import (
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/myazici/portfolio-site-backend/database"
	"github.com/myazici/portfolio-site-backend/errs"
)

type cvHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	apiKey      string
	apiSecret   string
	client      *http.Client
}

func newCVHandler(profileRepo *database.ProfileRepo, apiKey, apiSecret string) cvHandler {
	logger := log.With().Str("handlerName", "cvHandler").Logger()

	return cvHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		apiKey:      apiKey,
		apiSecret:   apiSecret,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// downloadCV proxies the stored CV from the media store and serves it as an
// attachment. The media store URL is never handed to the browser directly
// because fetching it needs API credentials.
func (h cvHandler) downloadCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil || profile.CVURL == nil || *profile.CVURL == "" {
			h.responder.WriteError(w, errs.NewNotFoundError("CV not found"))
			return
		}

		if h.apiKey == "" || h.apiSecret == "" {
			h.responder.WriteError(w, errs.NewServiceUnconfiguredError("media store"))
			return
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, *profile.CVURL, nil)
		if err != nil {
			h.responder.WriteError(w, errs.NewUpstreamError("media store", err))
			return
		}
		req.SetBasicAuth(h.apiKey, h.apiSecret)

		resp, err := h.client.Do(req)
		if err != nil {
			h.responder.WriteError(w, errs.NewUpstreamError("media store", err))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			h.logger.Error().Int("status", resp.StatusCode).Msg("Media store CV fetch failed")
			h.responder.WriteError(w, errs.NewUpstreamError("media store", nil))
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="cv.pdf"`)
		w.Header().Set("Cache-Control", "public, max-age=3600")

		if _, err := io.Copy(w, resp.Body); err != nil {
			h.logger.Error().Err(err).Msg("Failed streaming CV to client")
		}
	}
}
