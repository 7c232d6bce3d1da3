// Package auth issues and validates access tokens and handles staff login.
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JwtIssuer is the issuer claim of every access token.
const JwtIssuer = "HireReview"

var (
	secretKey      = []byte(os.Getenv("SECRET_KEY"))
	accessTokenTTL = time.Hour
)

// Configure sets the signing secret and the access token lifetime.
func Configure(secret string, ttl time.Duration) {
	secretKey = []byte(secret)
	if ttl > 0 {
		accessTokenTTL = ttl
	}
}

// GenerateStandardToken issues an access token for the user with the configured lifetime.
// The second return value is reserved for a refresh token and is always empty.
func GenerateStandardToken(userID uuid.UUID) (string, string, error) {
	return GenerateTokenWithDuration(userID, accessTokenTTL, JwtIssuer)
}

// GenerateTokenWithDuration issues an access token valid for d, signed for issuer.
func GenerateTokenWithDuration(userID uuid.UUID, d time.Duration, issuer string) (string, string, error) {
	now := time.Now()
	generatedAccessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(d)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	})

	signedToken, err := generatedAccessToken.SignedString(secretKey)
	if err != nil {
		return "", "", fmt.Errorf("Failed to sign token: %w", err)
	}

	return signedToken, "", nil
}

// ValidatedToken parses encodeToken into registered claims and checks its HMAC signature.
func ValidatedToken(encodeToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodeToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return secretKey, nil
	})
}
