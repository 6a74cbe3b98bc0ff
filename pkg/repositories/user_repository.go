package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/reeltaste/reeltaste-engine/pkg/apperrors"
	"github.com/reeltaste/reeltaste-engine/pkg/database"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create inserts a new anonymous user.
	Create(ctx context.Context) (*models.User, error)
	// CreateWithCredentials inserts a new user with email and password hash.
	// Returns apperrors.ErrConflict if the email is already registered.
	CreateWithCredentials(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CompleteOnboarding(ctx context.Context, id uuid.UUID) error
	// LinkCredentials attaches email/password to an existing anonymous user,
	// preserving its id and owned rows. Returns apperrors.ErrConflict if the
	// email is already registered.
	LinkCredentials(ctx context.Context, id uuid.UUID, email, passwordHash string) (*models.User, error)
}

// userRepository implements UserRepository using PostgreSQL.
type userRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, onboarding_complete, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.OnboardingComplete,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

// Create inserts a new anonymous user.
func (r *userRepository) Create(ctx context.Context) (*models.User, error) {
	query := `
		INSERT INTO users (id, created_at, updated_at)
		VALUES ($1, $2, $2)
		RETURNING ` + userColumns

	now := time.Now()
	return scanUser(r.db.QueryRow(ctx, query, uuid.New(), now))
}

// CreateWithCredentials inserts a new user with email and password hash.
func (r *userRepository) CreateWithCredentials(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING ` + userColumns

	now := time.Now()
	user, err := scanUser(r.db.QueryRow(ctx, query, uuid.New(), email, passwordHash, now))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by id.
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a user by registered email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// CompleteOnboarding marks the user's onboarding as finished.
func (r *userRepository) CompleteOnboarding(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET onboarding_complete = TRUE, updated_at = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to complete onboarding: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LinkCredentials attaches email/password to an existing anonymous user.
func (r *userRepository) LinkCredentials(ctx context.Context, id uuid.UUID, email, passwordHash string) (*models.User, error) {
	query := `
		UPDATE users
		SET email = $1, password_hash = $2, updated_at = $3
		WHERE id = $4
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, email, passwordHash, time.Now(), id))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return user, nil
}

// isUniqueViolation reports whether err wraps a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Ensure userRepository implements UserRepository at compile time.
var _ UserRepository = (*userRepository)(nil)
