package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/port-russell/marina-service/internal/api/dto"
	"github.com/port-russell/marina-service/internal/auth"
	"github.com/port-russell/marina-service/internal/domain"
	"github.com/port-russell/marina-service/internal/events"
	"github.com/port-russell/marina-service/internal/repository"
	apperrors "github.com/port-russell/marina-service/pkg/util"
)

// UserService coordinates account CRUD and authentication.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, tokens *auth.TokenManager, bcryptCost int) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, tokens: tokens, bcryptCost: bcryptCost}
}

// GetAll lists every account.
func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}
	return users, nil
}

// GetByID loads one account.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user-not-found")
		}
		return nil, apperrors.NewStoreFailure(err)
	}
	return user, nil
}

// Create persists a new account. The password is hashed here and never
// stored in plaintext.
func (s *UserService) Create(ctx context.Context, in dto.UserCreate) (*domain.User, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewStoreFailure(err)
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserCreated, user.ID, map[string]any{"email": user.Email}))
	return user, nil
}

// Update overwrites only the fields present in the patch. A new password is
// re-hashed; an unchanged one keeps its existing hash.
func (s *UserService) Update(ctx context.Context, id string, patch dto.UserPatch) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user_not_found")
		}
		return nil, apperrors.NewStoreFailure(err)
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.NewStoreFailure(err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user_not_found")
		}
		return nil, apperrors.NewStoreFailure(err)
	}
	return user, nil
}

// Delete removes an account. Deleting an already-absent id succeeds the
// same way.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return apperrors.NewStoreFailure(err)
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserDeleted, id, nil))
	return nil
}

// Authenticate verifies credentials and mints the long-window session
// token. Unknown emails answer 404, wrong passwords 403.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewNotFound("user_not_found")
		}
		return nil, "", time.Time{}, apperrors.NewStoreFailure(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewForbidden("wrong_credentials")
	}

	token, expiresAt, err := s.tokens.GenerateLoginToken(auth.UserClaim{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternal(err)
	}
	return user, token, expiresAt, nil
}
