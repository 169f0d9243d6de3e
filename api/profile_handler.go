package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/myazici/portfolio-site-backend/database"
	"github.com/myazici/portfolio-site-backend/errs"
	"github.com/myazici/portfolio-site-backend/models"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// getProfile returns the singleton profile, or null if it was never created.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"profile": profile})
	}
}

// getPublicProfile serves the same row on the public page.
func (h profileHandler) getPublicProfile() http.HandlerFunc {
	return h.getProfile()
}

// upsertProfile merges the request into the stored profile. Only keys present
// in the body are written; a key present with null clears the field, an
// absent key never does. The first write creates the row and answers 201.
func (h profileHandler) upsertProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		current, err := h.profileRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		created := current == nil
		profile := models.Profile{ID: models.ProfileRecordID}
		if current != nil {
			profile = *current
		}

		if raw, ok := body["description"]; ok {
			var value *string
			if err := json.Unmarshal(raw, &value); err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("description", "must be a string or null"))
				return
			}
			profile.Description = value
		}
		if raw, ok := body["profileImageUrl"]; ok {
			var value *string
			if err := json.Unmarshal(raw, &value); err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("profileImageUrl", "must be a string or null"))
				return
			}
			profile.ProfileImageURL = value
		}
		if raw, ok := body["cvUrl"]; ok {
			var value *string
			if err := json.Unmarshal(raw, &value); err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("cvUrl", "must be a string or null"))
				return
			}
			profile.CVURL = value
		}
		if raw, ok := body["contactInfo"]; ok {
			var value map[string]interface{}
			if err := json.Unmarshal(raw, &value); err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("contactInfo", "must be an object or null"))
				return
			}
			profile.ContactInfo = datatypes.JSONMap(value)
		}

		if err := h.profileRepo.Upsert(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "profile", err))
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		h.responder.WriteJSONWithStatus(w, status, map[string]any{"profile": profile})
	}
}
