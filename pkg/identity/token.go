package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenExpiry reads the exp claim of an access token without
// verifying its signature. Callers use it to decide when to Refresh;
// verification stays the server's job.
func AccessTokenExpiry(accessToken string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("access token carries no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}
