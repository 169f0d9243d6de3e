package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteProjectImage(t *testing.T) {
	env := newTestEnv(t)
	project := createTestProject(t, env, map[string]any{
		"title":  "Gallery",
		"images": []any{"https://cdn/a.png", "https://cdn/b.png"},
	})
	require.Len(t, project.Images, 2)

	rec := env.do(t, jsonRequest(t, http.MethodDelete, fmt.Sprintf("/project-image/%d", project.Images[0].ID), nil), true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// The sibling image and the project itself survive
	remaining, err := env.db.ProjectRepo().FindWithImages(project.ID)
	require.NoError(t, err)
	require.NotNil(t, remaining)
	require.Len(t, remaining.Images, 1)
	assert.Equal(t, "https://cdn/b.png", remaining.Images[0].ImageURL)
}

func TestDeleteProjectImageUnknownID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, jsonRequest(t, http.MethodDelete, "/project-image/9999", nil), true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, jsonRequest(t, http.MethodDelete, "/project-image/not-a-number", nil), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProjectImageRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, jsonRequest(t, http.MethodDelete, "/project-image/1", nil), false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
