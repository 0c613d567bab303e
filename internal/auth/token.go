package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/rspur/sampleportal/internal/user"
)

// Codec encodes and decodes session tokens of the form
//
//	base64url(JSON(payload)) + "." + base64url(HMAC-SHA256(secret, encodedPayload))
//
// The MAC covers the encoded payload bytes, not the raw JSON, and both
// segments use the unpadded URL-safe alphabet so the separator can never
// appear inside them.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the codec's time source. Tests use this to pin expiry.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// TTL exposes the configured session lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode mints a token for the given session view. The ttl is the codec's
// fixed configuration, never caller-supplied, so the encode boundary cannot
// be talked into long-lived tokens.
func (c *Codec) Encode(view user.SessionView) (string, error) {
	payload := SessionPayload{
		User: view,
		Exp:  c.now().Unix() + int64(c.ttl.Seconds()),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(raw)
	return encoded + "." + c.sign(encoded), nil
}

// Decode verifies and parses a token. The signature is checked before the
// payload is ever parsed, and the comparison is constant time.
func (c *Codec) Decode(token string) (*SessionPayload, error) {
	if strings.Count(token, ".") != 1 {
		return nil, ErrMalformedToken
	}
	encoded, signature, _ := strings.Cut(token, ".")
	if encoded == "" || signature == "" {
		return nil, ErrMalformedToken
	}

	expected := c.sign(encoded)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return nil, ErrBadSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrMalformedToken
	}

	var payload SessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, ErrMalformedToken
	}
	if payload.User.ID == "" || payload.Exp == 0 {
		return nil, ErrMalformedToken
	}

	// exp == now is still valid; only strictly-less is expired.
	if payload.Exp < c.now().Unix() {
		return nil, ErrTokenExpired
	}

	return &payload, nil
}

func (c *Codec) sign(encodedPayload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
