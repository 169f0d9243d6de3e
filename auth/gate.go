package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminSubject = "admin"

var (
	ErrNoSecret     = errors.New("session secret is not configured")
	ErrInvalidToken = errors.New("invalid session token")
)

// Session is an authenticated admin session decoded from a token.
type Session struct {
	Subject  string
	IssuedAt time.Time
}

// Gate verifies the shared admin password and issues/validates session
// tokens. Token mechanics live here so the Policy check stays independent of
// how sessions are transported.
type Gate struct {
	password     string
	passwordHash string
	secret       []byte
	sessionTTL   time.Duration
}

func NewGate(password, passwordHash string, secret []byte, sessionTTL time.Duration) *Gate {
	return &Gate{
		password:     password,
		passwordHash: passwordHash,
		secret:       secret,
		sessionTTL:   sessionTTL,
	}
}

// VerifyPassword checks a submitted password against the configured secret.
// With no secret configured, every input is rejected. A bcrypt hash, when
// configured, takes precedence over the plain password.
func (g *Gate) VerifyPassword(input string) bool {
	if input == "" {
		return false
	}
	if g.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(input)) == nil
	}
	if g.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(input), []byte(g.password)) == 1
}

// IssueToken creates a signed session token for the admin subject.
func (g *Gate) IssueToken(now time.Time) (string, error) {
	if len(g.secret) == 0 {
		return "", ErrNoSecret
	}
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.sessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// ParseToken validates a session token and returns the session it carries.
func (g *Gate) ParseToken(tokenString string) (*Session, error) {
	if len(g.secret) == 0 {
		return nil, ErrNoSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	session := &Session{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	return session, nil
}

// SessionTTL returns the configured session lifetime, used for cookie expiry.
func (g *Gate) SessionTTL() time.Duration {
	return g.sessionTTL
}
