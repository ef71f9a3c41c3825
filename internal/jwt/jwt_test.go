package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	userID := uuid.New()
	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	err = j.Validate(ctx, token)
	assert.Error(t, err)

	_, err = j.GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	err := j.Validate(ctx, "not.a.token")
	assert.Error(t, err)

	_, err = j.GetClaims(ctx, "garbage")
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	j1 := New("secret1", time.Minute)
	j2 := New("secret2", time.Minute)

	token, err := j1.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	err = j2.Validate(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	t.Run("ValidHeader", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer sometoken")

		token, err := j.GetTokenFromRequest(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "sometoken", token)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)

		_, err := j.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")

		_, err := j.GetTokenFromRequest(ctx, req)
		assert.Error(t, err)
	})
}
