package api

import (
	"context"

	"github.com/myazici/portfolio-site-backend/auth"
)

type keyType string

const sessionKey keyType = "session"

// ctxWithSession adds an authenticated session to the context
func ctxWithSession(ctx context.Context, session *auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// ctxGetSession retrieves the session from the context, or nil when the
// request came through an unauthenticated route.
func ctxGetSession(ctx context.Context) *auth.Session {
	if session, ok := ctx.Value(sessionKey).(*auth.Session); ok {
		return session
	}
	return nil
}
