package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myazici/portfolio-site-backend/auth"
	"github.com/myazici/portfolio-site-backend/database"
)

func validContactBody() map[string]string {
	return map[string]string{
		"name":    "Ada Visitor",
		"email":   "ada@example.com",
		"message": "I like your work.",
	}
}

func TestContactSendsMailWithReplyTo(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, jsonRequest(t, http.MethodPost, "/contact", validContactBody()), false)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]bool](t, rec)
	assert.True(t, body["ok"])

	require.Len(t, env.mailer.sent, 1)
	sent := env.mailer.sent[0]
	assert.Equal(t, []string{"owner@example.com"}, sent.To)
	assert.Equal(t, "ada@example.com", sent.ReplyTo)
	assert.Contains(t, sent.Text, "Ada Visitor")
	assert.Contains(t, sent.Text, "I like your work.")
}

func TestContactValidation(t *testing.T) {
	env := newTestEnv(t)

	for name, mutate := range map[string]func(map[string]string){
		"missing name":       func(b map[string]string) { delete(b, "name") },
		"missing email":      func(b map[string]string) { delete(b, "email") },
		"missing message":    func(b map[string]string) { delete(b, "message") },
		"invalid email":      func(b map[string]string) { b["email"] = "not-an-address" },
		"whitespace message": func(b map[string]string) { b["message"] = "   " },
	} {
		body := validContactBody()
		mutate(body)

		rec := env.do(t, jsonRequest(t, http.MethodPost, "/contact", body), false)
		assert.Equalf(t, http.StatusBadRequest, rec.Code, "%s should be rejected", name)
	}

	assert.Empty(t, env.mailer.sent)
}

func TestContactMailerFailure(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.err = errors.New("resend is down")

	rec := env.do(t, jsonRequest(t, http.MethodPost, "/contact", validContactBody()), false)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestContactWithoutConfiguredMailer(t *testing.T) {
	db := database.New(newTestDB(t))
	gate := auth.NewGate(testAdminPassword, "", []byte("test-secret"), time.Hour)
	router := newRouter(db,
		withConfig(map[string]string{}),
		withStartupTime(time.Now()),
		withGate(gate),
	)
	env := &testEnv{router: router, gate: gate, db: db}

	rec := env.do(t, jsonRequest(t, http.MethodPost, "/contact", validContactBody()), false)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
