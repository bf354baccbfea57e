package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAccessToken is returned by [NewAuthSession] when the access token
// cannot be parsed or carries no usable claims.
var ErrInvalidAccessToken = errors.New("invalid access token")

// AuthSession is the authenticated session handed out by the remote backend.
//
// The access token is a JWT issued (and verified) by the backend; the cache
// engine only reads its claims to learn the owner and the expiry moment and
// never checks the signature.
type AuthSession struct {
	// AccessToken is the compact JWS used to authorize backend calls.
	AccessToken string `json:"access_token"`

	// RefreshToken is the opaque token used to obtain a new access token.
	RefreshToken string `json:"refresh_token"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"user_id"`

	// ExpiresAt is the moment the access token stops being valid, taken from
	// the "exp" claim. Zero means the token does not expire.
	ExpiresAt time.Time `json:"expires_at"`
}

// NewAuthSession builds an [AuthSession] from a backend access token and its
// refresh token. The "sub" claim is mandatory; "exp" is optional.
func NewAuthSession(accessToken, refreshToken string) (AuthSession, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return AuthSession{}, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return AuthSession{}, fmt.Errorf("%w: missing subject", ErrInvalidAccessToken)
	}

	session := AuthSession{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       subject,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}

	return session, nil
}

// Expired reports whether the session is no longer valid at now.
func (s AuthSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
