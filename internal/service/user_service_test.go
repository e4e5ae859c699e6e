package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port-russell/marina-service/internal/api/dto"
	"github.com/port-russell/marina-service/internal/auth"
	"github.com/port-russell/marina-service/internal/domain"
	"github.com/port-russell/marina-service/internal/events"
	"github.com/port-russell/marina-service/internal/service"
	"github.com/port-russell/marina-service/internal/testutil"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

func newUserService(t *testing.T) (*service.UserService, *testutil.FakeUserRepo) {
	t.Helper()
	repo := testutil.NewFakeUserRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour, time.Hour)
	return service.NewUserService(repo, events.NewInMemoryDispatcher(), tokens, 4), repo
}

func seedUser(t *testing.T, repo *testutil.FakeUserRepo, name, email, password string) domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	return repo.Seed(domain.User{Name: name, Email: email, PasswordHash: hash})
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Create(context.Background(), dto.UserCreate{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "secret"))
}

func TestUserService_GetByID(t *testing.T) {
	svc, repo := newUserService(t)
	seeded := seedUser(t, repo, "Alice", "alice@example.com", "secret")

	t.Run("found", func(t *testing.T) {
		user, err := svc.GetByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.Email, user.Email)
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "2f0c9f5e-9b1a-4f86-b7a4-000000000000")
		httpErr, ok := apperrors.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, 404, httpErr.Status)
		assert.Equal(t, "user-not-found", httpErr.Payload)
	})

	t.Run("malformed id answers 501", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "not-a-uuid")
		httpErr, ok := apperrors.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, 501, httpErr.Status)
	})
}

func TestUserService_UpdateKeepsHashWhenPasswordAbsent(t *testing.T) {
	svc, repo := newUserService(t)
	seeded := seedUser(t, repo, "Alice", "alice@example.com", "secret")

	name := "Alicia"
	updated, err := svc.Update(context.Background(), seeded.ID, dto.UserPatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, seeded.PasswordHash, updated.PasswordHash)
}

func TestUserService_UpdateRehashesNewPassword(t *testing.T) {
	svc, repo := newUserService(t)
	seeded := seedUser(t, repo, "Alice", "alice@example.com", "secret")

	password := "changed"
	updated, err := svc.Update(context.Background(), seeded.ID, dto.UserPatch{Password: &password})
	require.NoError(t, err)

	assert.NotEqual(t, seeded.PasswordHash, updated.PasswordHash)
	assert.NoError(t, auth.ComparePassword(updated.PasswordHash, "changed"))
}

func TestUserService_UpdateUnknownAnswers404(t *testing.T) {
	svc, _ := newUserService(t)

	name := "Nobody"
	_, err := svc.Update(context.Background(), "2f0c9f5e-9b1a-4f86-b7a4-000000000000", dto.UserPatch{Name: &name})
	httpErr, ok := apperrors.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "user_not_found", httpErr.Payload)
}

func TestUserService_DeleteIsIdempotent(t *testing.T) {
	svc, repo := newUserService(t)
	seeded := seedUser(t, repo, "Alice", "alice@example.com", "secret")

	require.NoError(t, svc.Delete(context.Background(), seeded.ID))
	assert.NoError(t, svc.Delete(context.Background(), seeded.ID))
}

func TestUserService_Authenticate(t *testing.T) {
	svc, repo := newUserService(t)
	seeded := seedUser(t, repo, "Alice", "alice@example.com", "secret")

	t.Run("success mints a token", func(t *testing.T) {
		user, token, expiresAt, err := svc.Authenticate(context.Background(), "alice@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
		assert.NotEmpty(t, token)
		assert.True(t, expiresAt.After(time.Now()))
	})

	t.Run("unknown email answers 404", func(t *testing.T) {
		_, _, _, err := svc.Authenticate(context.Background(), "ghost@example.com", "secret")
		httpErr, ok := apperrors.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, 404, httpErr.Status)
		assert.Equal(t, "user_not_found", httpErr.Payload)
	})

	t.Run("wrong password answers 403", func(t *testing.T) {
		_, _, _, err := svc.Authenticate(context.Background(), "alice@example.com", "wrong")
		httpErr, ok := apperrors.AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, 403, httpErr.Status)
		assert.Equal(t, "wrong_credentials", httpErr.Payload)
	})
}
