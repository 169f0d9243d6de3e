package services

import (
	"context"
	"io"
)

// UploadOptions describes where an uploaded blob should live in the media store.
type UploadOptions struct {
	Folder       string
	PublicID     string
	ResourceType string // "image" or "raw"
	Overwrite    bool
}

// MediaStore accepts a binary blob and returns a stable retrieval URL.
// Failures are surfaced to the caller as-is; nothing retries.
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader, opts UploadOptions) (string, error)
}
