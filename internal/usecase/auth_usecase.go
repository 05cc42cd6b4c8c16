package usecase

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"mealmate/pkg/errors"
)

type AuthUseCase struct {
	secret []byte
	expiry time.Duration
}

func NewAuthUseCase(secret string, expirySeconds int64) *AuthUseCase {
	return &AuthUseCase{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

// IssueToken signs a short-lived HMAC token carrying the caller's email. The
// token travels in an HttpOnly cookie; the middleware on gated routes is the
// only consumer.
func (uc *AuthUseCase) IssueToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(uc.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.secret)
	if err != nil {
		return "", errors.Internal("Failed to sign token", err)
	}

	return signed, nil
}
