package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/apperrors"
	"github.com/reeltaste/reeltaste-engine/pkg/auth"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/repositories"
)

// AuthService handles account registration, login and credential linking.
// Sessions themselves are cookie state owned by the handler layer; this
// service only decides who the user is.
type AuthService struct {
	users  repositories.UserRepository
	logger *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users repositories.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		logger: logger.Named("auth_service"),
	}
}

// Register creates a new account with email/password credentials.
// Returns apperrors.ErrEmailTaken if the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateWithCredentials(ctx, email, hash)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies credentials. An unknown email and a wrong password both
// return apperrors.ErrInvalidCredentials so callers cannot probe which
// emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == nil || !auth.CheckPassword(*user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))
	return user, nil
}

// CreateAnonymous creates an account with no credentials. Anonymous users
// own data like any other user and can link credentials later.
func (s *AuthService) CreateAnonymous(ctx context.Context) (*models.User, error) {
	user, err := s.users.Create(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("anonymous user created", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Link attaches email/password credentials to an existing anonymous account,
// preserving its id and all owned data. Returns apperrors.ErrEmailTaken if
// the email already belongs to another account.
func (s *AuthService) Link(ctx context.Context, userID uuid.UUID, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.LinkCredentials(ctx, userID, email, hash)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	s.logger.Info("credentials linked", zap.String("user_id", user.ID.String()))
	return user, nil
}

// GetUser retrieves a user by id.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}
