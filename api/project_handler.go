package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/myazici/portfolio-site-backend/database"
	"github.com/myazici/portfolio-site-backend/errs"
	"github.com/myazici/portfolio-site-backend/models"
)

type projectHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectRepo      *database.ProjectRepo
	projectImageRepo *database.ProjectImageRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, projectImageRepo *database.ProjectImageRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectRepo:      projectRepo,
		projectImageRepo: projectImageRepo,
	}
}

// ProjectCollection represents the aggregated project listing
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// getAllProjects retrieves all projects with their images, newest first
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAllWithImages()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getPublicProjects serves the same aggregated listing on the public page
func (h projectHandler) getPublicProjects() http.HandlerFunc {
	return h.getAllProjects()
}

type createProjectRequest struct {
	Title       json.RawMessage `json:"title"`
	Description json.RawMessage `json:"description"`
	Images      json.RawMessage `json:"images"`
}

// createProject creates a new project, optionally seeded with image URLs
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		if len(req.Title) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		var title string
		if err := json.Unmarshal(req.Title, &title); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "must be a string"))
			return
		}
		if strings.TrimSpace(title) == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "must not be empty"))
			return
		}

		var description *string
		if len(req.Description) > 0 {
			if err := json.Unmarshal(req.Description, &description); err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("description", "must be a string or null"))
				return
			}
		}

		// Non-string and empty seed entries are dropped
		var imageURLs []string
		if len(req.Images) > 0 {
			var entries []any
			if err := json.Unmarshal(req.Images, &entries); err == nil {
				for _, entry := range entries {
					if url, ok := entry.(string); ok && url != "" {
						imageURLs = append(imageURLs, url)
					}
				}
			}
		}

		project := models.Project{Title: title, Description: description}
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		for _, url := range imageURLs {
			image := models.ProjectImage{ImageURL: url, ProjectID: project.ID}
			if err := h.projectImageRepo.Add(&image); err != nil {
				h.logger.Error().Err(err).Str("imageUrl", url).Msg("Failed to create seed project image")
				h.responder.WriteError(w, wrapDatabaseError("create", "project image", err))
				return
			}
		}

		created, err := h.projectRepo.FindWithImages(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, map[string]any{"project": created})
	}
}

// updateProject applies a partial update to an existing project. Only fields
// present in the body are touched.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := parseIDParam(r, "projectID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		exists, err := h.projectRepo.Exists(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if !exists {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		fields := map[string]any{}
		if raw, ok := body["title"]; ok {
			// Unmarshal through a pointer so a JSON null is caught; titles
			// are required and can never be cleared.
			var title *string
			if err := json.Unmarshal(raw, &title); err != nil || title == nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("title", "must be a string"))
				return
			}
			if strings.TrimSpace(*title) == "" {
				h.responder.WriteError(w, errs.NewInvalidFieldError("title", "must not be empty"))
				return
			}
			fields["title"] = *title
		}
		if raw, ok := body["description"]; ok {
			var description *string
			if err := json.Unmarshal(raw, &description); err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("description", "must be a string or null"))
				return
			}
			fields["description"] = description
		}

		if err := h.projectRepo.UpdateFields(projectID, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindWithImages(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"project": updated})
	}
}

// deleteProject removes a project; the storage-layer cascade removes its images
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := parseIDParam(r, "projectID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		deleted, err := h.projectRepo.Delete(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
