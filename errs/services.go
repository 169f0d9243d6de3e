package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upstream Service Errors
var (
	ErrUpstreamService     = errors.New("upstream service failure")
	ErrServiceUnconfigured = errors.New("service not configured")
	ErrMediaUploadFailed   = errors.New("media upload failed")
	ErrEmailDeliveryFailed = errors.New("email delivery failed")
)

// NewUpstreamError wraps a failure from an external collaborator. The caller
// sees a generic failure; the cause is kept for logging only.
func NewUpstreamError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUpstreamService,
		Details:    fmt.Sprintf("%s request failed", service),
		Cause:      cause,
	}
}

func NewServiceUnconfiguredError(service string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrServiceUnconfigured,
		Details:    fmt.Sprintf("%s is not configured", service),
	}
}

func NewMediaUploadError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMediaUploadFailed,
		Cause:      cause,
	}
}

func NewEmailDeliveryError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEmailDeliveryFailed,
		Cause:      cause,
	}
}

// Upstream Service Error Type Checkers
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUpstreamService)
}

func IsServiceUnconfiguredError(err error) bool {
	return errors.Is(err, ErrServiceUnconfigured)
}
