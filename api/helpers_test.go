package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/myazici/portfolio-site-backend/auth"
	"github.com/myazici/portfolio-site-backend/database"
	"github.com/myazici/portfolio-site-backend/services"
)

const testAdminPassword = "hunter2"

type fakeMediaStore struct {
	uploads []services.UploadOptions
	err     error
}

func (f *fakeMediaStore) Upload(_ context.Context, _ io.Reader, opts services.UploadOptions) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, opts)
	return fmt.Sprintf("https://cdn.example.com/%s/%d", opts.Folder, len(f.uploads)), nil
}

type fakeMailer struct {
	sent []services.Email
	err  error
}

func (f *fakeMailer) Send(_ context.Context, email services.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

type testEnv struct {
	router *chi.Mux
	gate   *auth.Gate
	gorm   *gorm.DB
	db     database.Database
	store  *fakeMediaStore
	mailer *fakeMailer
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := newTestDB(t)
	db := database.New(gdb)
	gate := auth.NewGate(testAdminPassword, "", []byte("test-secret"), time.Hour)
	store := &fakeMediaStore{}
	mailer := &fakeMailer{}

	router := newRouter(db,
		withConfig(map[string]string{
			"CONTACT_TO_EMAIL":      "owner@example.com",
			"CLOUDINARY_API_KEY":    "test-key",
			"CLOUDINARY_API_SECRET": "test-secret",
		}),
		withStartupTime(time.Now()),
		withGate(gate),
		withPolicy(auth.NewAdminPolicy()),
		withMediaStore(store),
		withMailer(mailer),
	)

	return &testEnv{router: router, gate: gate, gorm: gdb, db: db, store: store, mailer: mailer}
}

// do serves the request, attaching a valid session cookie when authed is set.
func (e *testEnv) do(t *testing.T, req *http.Request, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	if authed {
		token, err := e.gate.IssueToken(time.Now())
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, path string, fields map[string]string, fileNames ...string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range fileNames {
		fw, err := writer.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("binary-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}
