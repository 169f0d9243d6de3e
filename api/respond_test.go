package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

func TestResponsesCarryJSONContentType(t *testing.T) {
	env := newTestEnv(t)

	// 200 path
	listed := env.do(t, jsonRequest(t, http.MethodGet, "/public/projects", nil), false)
	require.Equal(t, http.StatusOK, listed.Code)
	assert.Equal(t, jsonContentType, listed.Header().Get("Content-Type"))

	// 201 path, where the status line goes out before the body
	created := env.do(t, jsonRequest(t, http.MethodPost, "/project", map[string]any{"title": "Typed"}), true)
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Equal(t, jsonContentType, created.Header().Get("Content-Type"))

	// Error path
	rejected := env.do(t, jsonRequest(t, http.MethodPost, "/project", map[string]any{}), true)
	require.Equal(t, http.StatusBadRequest, rejected.Code)
	assert.Equal(t, jsonContentType, rejected.Header().Get("Content-Type"))
}
