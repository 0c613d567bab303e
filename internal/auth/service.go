package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/rspur/sampleportal/internal/core/events"
	"github.com/rspur/sampleportal/internal/user"
)

// Service is the session verifier: it turns credentials into tokens and
// tokens back into live directory users.
type Service struct {
	codec     *Codec
	directory user.Directory
	bus       *events.EventBus
	logger    *slog.Logger
	secure    bool
}

func NewService(codec *Codec, directory user.Directory, bus *events.EventBus, logger *slog.Logger, secureCookies bool) *Service {
	return &Service{
		codec:     codec,
		directory: directory,
		bus:       bus,
		logger:    logger,
		secure:    secureCookies,
	}
}

// Authenticate validates credentials and mints a session token.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (string, *user.User, error) {
	if err := dto.Validate(); err != nil {
		return "", nil, err
	}

	u, err := s.directory.FindByEmail(dto.Email)
	if err != nil {
		_ = s.bus.Publish(ctx, events.UserLoginFailed(dto.Email))
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		_ = s.bus.Publish(ctx, events.UserLoginFailed(dto.Email))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.codec.Encode(u.SessionView())
	if err != nil {
		return "", nil, err
	}

	_ = s.bus.Publish(ctx, events.UserLoggedIn(u.ID, u.Email))
	return token, u, nil
}

// Resolve turns a raw token into the fresh directory record. The directory
// is authoritative over the token: a valid token whose user is gone still
// fails, and permission changes made after login apply immediately because
// the stale snapshot inside the payload is discarded.
//
// Callers collapse every error here into a single "no session" outcome; the
// distinct variants exist for logging only.
func (s *Service) Resolve(token string) (*user.User, error) {
	payload, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	u, err := s.directory.FindByID(payload.User.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	return u, nil
}

// SessionCookie wraps a token in the portal session cookie.
func (s *Service) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.codec.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie returns the logout cookie: empty value with a
// Max-Age=0 attribute on the wire (net/http emits that for MaxAge < 0).
func (s *Service) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
