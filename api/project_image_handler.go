package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/myazici/portfolio-site-backend/database"
	"github.com/myazici/portfolio-site-backend/errs"
)

type projectImageHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectImageRepo *database.ProjectImageRepo
}

func newProjectImageHandler(projectImageRepo *database.ProjectImageRepo) projectImageHandler {
	logger := log.With().Str("handlerName", "projectImageHandler").Logger()

	return projectImageHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectImageRepo: projectImageRepo,
	}
}

// deleteProjectImage removes the image row only. The backing media object is
// kept because its public id is not stored.
func (h projectImageHandler) deleteProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, ok := parseIDParam(r, "imageID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		deleted, err := h.projectImageRepo.Delete(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project image", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("image not found"))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
