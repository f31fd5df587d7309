package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ougotti/simplenotebook/internal/identity"
)

// Claims represents the access-token claims: the registered subject is
// the user identifier, the rest are optional profile attributes mirroring
// what the identity provider embeds.
type Claims struct {
	jwt.RegisteredClaims
	Name       string `json:"name,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Username   string `json:"cognito:username,omitempty"`
	Email      string `json:"email,omitempty"`
}

// JWT verifies and mints access tokens with symmetric HMAC. Production
// tokens come from the external identity provider; minting exists for
// development and tests.
type JWT struct {
	secretKey string
}

// NewJWT creates a token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey}
}

const accessTTL = time.Hour

// GenerateAccessToken mints a signed access token for the given profile.
func (j *JWT) GenerateAccessToken(profile identity.Profile) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
		Name:       profile.Name,
		GivenName:  profile.GivenName,
		FamilyName: profile.FamilyName,
		Username:   profile.Username,
		Email:      profile.Email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates the signature and expiry and extracts the
// caller's profile. The subject claim must be present.
func (j *JWT) ParseAccessToken(tokenString string) (identity.Profile, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return identity.Profile{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return identity.Profile{}, fmt.Errorf("access token is invalid")
	}
	if claims.Subject == "" {
		return identity.Profile{}, fmt.Errorf("access token has no subject")
	}

	return claims.profile(), nil
}

// ParseProfileClaims extracts profile claims without verifying the
// signature. For display fallback on the client only; never use for
// authorization.
func ParseProfileClaims(tokenString string) (identity.Profile, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return identity.Profile{}, fmt.Errorf("failed to parse token claims: %w", err)
	}

	return claims.profile(), nil
}

func (c *Claims) profile() identity.Profile {
	return identity.Profile{
		Subject:    c.Subject,
		Name:       c.Name,
		GivenName:  c.GivenName,
		FamilyName: c.FamilyName,
		Username:   c.Username,
		LoginID:    c.Email,
		Email:      c.Email,
	}
}
