package session

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"hotel-dashboard/models"
)

// Session identifies the operator for a single request: the bearer token sent
// upstream and the service provider the token belongs to. It is passed
// explicitly to every core operation so nothing reads ambient state.
type Session struct {
	Token             string
	ServiceProviderID string
}

// Claims is the token payload issued by the platform's auth service.
type Claims struct {
	ServiceProviderID string `json:"providerId"`
	jwt.RegisteredClaims
}

// Valid reports whether the session can back a platform call. Both the token
// and the provider identity are preconditions for every operation.
func (s Session) Valid() error {
	if strings.TrimSpace(s.Token) == "" || strings.TrimSpace(s.ServiceProviderID) == "" {
		return models.ErrUnauthenticated
	}
	return nil
}

// FromBearer builds a Session from an Authorization header value. The token
// is parsed and expiry-checked locally so a dead session fails fast instead
// of producing a doomed network call.
func FromBearer(header string, secret []byte) (Session, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Session{}, fmt.Errorf("%w: missing token", models.ErrUnauthenticated)
	}
	if len(header) < 8 || !strings.EqualFold(header[:7], "Bearer ") {
		return Session{}, fmt.Errorf("%w: invalid token format", models.ErrUnauthenticated)
	}
	raw := header[7:]

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, fmt.Errorf("%w: invalid token", models.ErrUnauthenticated)
	}
	if strings.TrimSpace(claims.ServiceProviderID) == "" {
		return Session{}, fmt.Errorf("%w: token has no provider identity", models.ErrUnauthenticated)
	}

	return Session{Token: raw, ServiceProviderID: claims.ServiceProviderID}, nil
}
