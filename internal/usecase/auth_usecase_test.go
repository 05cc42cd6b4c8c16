package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	uc := NewAuthUseCase("secret", 3600)

	signed, err := uc.IssueToken("a@b.c")
	assert.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "a@b.c", claims["email"])

	exp := int64(claims["exp"].(float64))
	assert.Greater(t, exp, time.Now().Unix())
	assert.LessOrEqual(t, exp, time.Now().Add(time.Hour+time.Minute).Unix())
}
