package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/myazici/portfolio-site-backend/database"
	"github.com/myazici/portfolio-site-backend/errs"
	"github.com/myazici/portfolio-site-backend/models"
	"github.com/myazici/portfolio-site-backend/services"
)

const maxUploadSize = 20 << 20 // 20MB

type uploadHandler struct {
	responder        Responder
	logger           zerolog.Logger
	mediaStore       services.MediaStore
	profileRepo      *database.ProfileRepo
	projectRepo      *database.ProjectRepo
	projectImageRepo *database.ProjectImageRepo
}

func newUploadHandler(
	mediaStore services.MediaStore,
	profileRepo *database.ProfileRepo,
	projectRepo *database.ProjectRepo,
	projectImageRepo *database.ProjectImageRepo,
) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		mediaStore:       mediaStore,
		profileRepo:      profileRepo,
		projectRepo:      projectRepo,
		projectImageRepo: projectImageRepo,
	}
}

// uploadProfilePicture uploads the profile image under a fixed public id so
// repeat uploads replace the previous asset, then writes the URL onto the
// profile row, creating it on first use.
func (h uploadHandler) uploadProfilePicture() http.HandlerFunc {
	return h.uploadProfileAsset(services.UploadOptions{
		Folder:       services.ProfileFolder,
		PublicID:     services.ProfilePicturePublicID,
		ResourceType: "image",
		Overwrite:    true,
	}, func(profile *models.Profile, url string) {
		profile.ProfileImageURL = &url
	})
}

// uploadCV stores the CV as a raw asset under a fixed public id.
func (h uploadHandler) uploadCV() http.HandlerFunc {
	return h.uploadProfileAsset(services.UploadOptions{
		Folder:       services.CVFolder,
		PublicID:     services.CVPublicID,
		ResourceType: "raw",
		Overwrite:    true,
	}, func(profile *models.Profile, url string) {
		profile.CVURL = &url
	})
}

func (h uploadHandler) uploadProfileAsset(opts services.UploadOptions, assign func(*models.Profile, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.mediaStore == nil {
			h.responder.WriteError(w, errs.NewServiceUnconfiguredError("media store"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("multipart/form-data body is required"))
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		url, err := h.mediaStore.Upload(r.Context(), file, opts)
		if err != nil {
			h.responder.WriteError(w, errs.NewMediaUploadError(err))
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
		assign(&profile, url)

		if err := h.profileRepo.Upsert(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "profile", err))
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		h.responder.WriteJSONWithStatus(w, status, map[string]any{"url": url, "profile": profile})
	}
}

// uploadProjectImages attaches one or more images to a project. Files are
// uploaded and inserted independently and sequentially; a failure midway
// leaves earlier attachments in place.
func (h uploadHandler) uploadProjectImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.mediaStore == nil {
			h.responder.WriteError(w, errs.NewServiceUnconfiguredError("media store"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("multipart/form-data body is required"))
			return
		}

		projectIDValue := r.FormValue("projectId")
		if projectIDValue == "" {
			projectIDValue = r.URL.Query().Get("projectId")
		}
		projectID64, err := strconv.ParseUint(projectIDValue, 10, 32)
		if err != nil || projectID64 == 0 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("projectId", "must be a positive integer"))
			return
		}
		projectID := uint(projectID64)

		exists, err := h.projectRepo.Exists(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if !exists {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		fileHeaders := r.MultipartForm.File["file"]
		if len(fileHeaders) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}

		var created []models.ProjectImage
		for _, fileHeader := range fileHeaders {
			file, err := fileHeader.Open()
			if err != nil {
				h.logger.Error().Err(err).Int("attached", len(created)).Msg("Failed to open uploaded file")
				h.responder.WriteError(w, errs.NewBadRequestError("failed to read uploaded file"))
				return
			}

			url, err := h.mediaStore.Upload(r.Context(), file, services.UploadOptions{
				Folder:       services.ProjectFolder(projectID),
				PublicID:     uuid.New().String(),
				ResourceType: "image",
				Overwrite:    false,
			})
			file.Close()
			if err != nil {
				h.logger.Error().Err(err).Int("attached", len(created)).Msg("Media upload failed mid-batch")
				h.responder.WriteError(w, errs.NewMediaUploadError(err))
				return
			}

			image := models.ProjectImage{ImageURL: url, ProjectID: projectID}
			if err := h.projectImageRepo.Add(&image); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create", "project image", err))
				return
			}
			created = append(created, image)
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, map[string]any{"images": created})
	}
}
