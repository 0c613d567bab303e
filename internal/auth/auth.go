package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/rspur/sampleportal/internal/user"
)

// SessionCookieName is the fixed cookie carrying the signed session token.
const SessionCookieName = "sampleportal_session"

// SessionPayload is the signed token body: a minimal identity+role
// projection plus a unix-seconds expiry. It is never persisted server-side;
// the signed string held by the client is its only durable form.
type SessionPayload struct {
	User user.SessionView `json:"user"`
	Exp  int64            `json:"exp"`
}

// Internal failure variants. Externally they all collapse to "no session";
// they stay distinct so logging keeps the real cause.
var (
	ErrMalformedToken     = errors.New("malformed session token")
	ErrBadSignature       = errors.New("session token signature mismatch")
	ErrTokenExpired       = errors.New("session token expired")
	ErrUnknownUser        = errors.New("session user not in directory")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ServiceAPI is what the transport layer consumes.
type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (string, *user.User, error)
	Resolve(token string) (*user.User, error)
	SessionCookie(token string) *http.Cookie
	ClearSessionCookie() *http.Cookie
}
