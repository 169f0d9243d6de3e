package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/myazici/portfolio-site-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSONWithStatus writes a non-200 JSON response. The content type must
// be set before the status line goes out, so callers that need a status
// other than 200 go through here instead of calling WriteHeader themselves.
func (r Responder) WriteJSONWithStatus(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	r.WriteJSON(w, data)
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Responses beyond this size indicate a bug, not a legitimate payload
	const maxResponseSize = 10 * 1024 * 1024 // 10MB
	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large, truncating")

		truncatedResponse := map[string]interface{}{
			"error":   "Response too large",
			"message": "The requested data exceeds the maximum response size",
		}

		truncatedJSON, err := json.Marshal(truncatedResponse)
		if err != nil {
			r.logger.Error().Err(err).Msg("error marshaling truncated response")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write(truncatedJSON)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSONWithStatus(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
			"status":  "error",
		})
		return
	}

	// Build response based on error details
	response := map[string]interface{}{
		"error":  apiErr.Error(),
		"status": "error",
	}

	// Add field information if present (for validation errors)
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	if apiErr.Details != "" {
		response["details"] = apiErr.Details
	}

	// The underlying cause is logged, never sent to the client
	if apiErr.Cause != nil {
		r.logger.Error().Int("status", apiErr.StatusCode).Msg(apiErr.GetFullError())
	}

	r.WriteJSONWithStatus(w, apiErr.StatusCode, response)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
