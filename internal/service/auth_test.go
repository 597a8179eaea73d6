package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	auth := NewAuthService(f.store, "test-secret")

	email := uuid.New().String() + "@example.com"
	user, err := auth.Register(ctx, email, "Alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)

	// the same email cannot register twice
	_, err = auth.Register(ctx, email, "Mallory", "other")
	assert.ErrorIs(t, err, ErrValidation)

	token, err := auth.Login(ctx, email, "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestAuthService_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	auth := NewAuthService(f.store, "test-secret")

	email := uuid.New().String() + "@example.com"
	_, err := auth.Register(ctx, email, "Alice", "s3cret")
	require.NoError(t, err)

	_, err = auth.Login(ctx, email, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_VerifyRejectsForeignToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	auth := NewAuthService(f.store, "test-secret")
	other := NewAuthService(f.store, "another-secret")

	email := uuid.New().String() + "@example.com"
	_, err := auth.Register(ctx, email, "Alice", "s3cret")
	require.NoError(t, err)

	token, err := auth.Login(ctx, email, "s3cret")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	f := newFixture(t)

	auth := NewAuthService(f.store, "test-secret")

	_, err := auth.Register(context.Background(), "", "Alice", "s3cret")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = auth.Register(context.Background(), "alice@example.com", "Alice", "")
	assert.ErrorIs(t, err, ErrValidation)
}
