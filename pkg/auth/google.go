package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

// GoogleClaims is the subset of a Google ID token the login flow needs.
type GoogleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	jwt.RegisteredClaims
}

// GoogleID returns the stable Google account id (the token subject).
func (c *GoogleClaims) GoogleID() string {
	return c.Subject
}

// GoogleVerifier validates Google ID tokens against Google's JWKS.
type GoogleVerifier struct {
	clientID string
	jwks     *keyfunc.JWKS
}

func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	jwks, err := keyfunc.Get(googleJWKSURL, keyfunc.Options{
		Ctx:             ctx,
		RefreshInterval: time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load Google JWKS: %w", err)
	}

	return &GoogleVerifier{clientID: clientID, jwks: jwks}, nil
}

func (v *GoogleVerifier) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}

// Verify parses and validates the ID token signature, issuer and audience.
// A valid token with an unverified email is rejected.
func (v *GoogleVerifier) Verify(tokenStr string) (*GoogleClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &GoogleClaims{}, v.jwks.Keyfunc,
		jwt.WithAudience(v.clientID),
	)
	if err != nil {
		return nil, fmt.Errorf("google token validation failed: %w", err)
	}

	claims, ok := token.Claims.(*GoogleClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid google token")
	}

	issuer, _ := claims.GetIssuer()
	if issuer != "accounts.google.com" && issuer != "https://accounts.google.com" {
		return nil, errors.New("unexpected token issuer")
	}
	if !claims.EmailVerified {
		return nil, errors.New("email not verified")
	}

	return claims, nil
}
