package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

// Upload folders and the fixed public ids for singleton assets.
const (
	ProfileFolder          = "portfolio/profile"
	CVFolder               = "portfolio/cv"
	ProjectFolderPrefix    = "portfolio/projects"
	ProfilePicturePublicID = "profile_picture"
	CVPublicID             = "cv.pdf"
)

// CloudinaryStore is the Cloudinary-backed MediaStore.
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStore builds a media store from Cloudinary credentials.
// Returns an error when any credential is missing so the caller can run
// without a media store and fail only on upload endpoints.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are not fully configured")
	}

	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary client: %w", err)
	}
	client.Config.URL.Secure = true

	return &CloudinaryStore{client: client}, nil
}

// Upload sends the blob to Cloudinary and returns its secure URL.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, opts UploadOptions) (string, error) {
	result, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       opts.Folder,
		PublicID:     opts.PublicID,
		ResourceType: opts.ResourceType,
		Overwrite:    api.Bool(opts.Overwrite),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", errors.New("cloudinary upload returned no URL")
	}

	log.Debug().
		Str("folder", opts.Folder).
		Str("publicId", result.PublicID).
		Msg("Uploaded asset to Cloudinary")

	return result.SecureURL, nil
}

// ProjectFolder returns the per-project upload folder.
func ProjectFolder(projectID uint) string {
	return fmt.Sprintf("%s/%d", ProjectFolderPrefix, projectID)
}
