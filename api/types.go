package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// parseIDParam reads a positive integer URL parameter.
func parseIDParam(r *http.Request, name string) (uint, bool) {
	value, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

type routeHandlers struct {
	authHandler         authHandler
	profileHandler      profileHandler
	projectHandler      projectHandler
	projectImageHandler projectImageHandler
	uploadHandler       uploadHandler
	contactHandler      contactHandler
	cvHandler           cvHandler
	healthHandler       healthHandler
}
