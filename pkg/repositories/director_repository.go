package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reeltaste/reeltaste-engine/pkg/apperrors"
	"github.com/reeltaste/reeltaste-engine/pkg/database"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
)

// DirectorRepository defines the interface for director preference data access.
type DirectorRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.DirectorPreference, error)
	Add(ctx context.Context, userID uuid.UUID, directorName string, rating int) (*models.DirectorPreference, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// directorRepository implements DirectorRepository using PostgreSQL.
type directorRepository struct {
	db *database.DB
}

// NewDirectorRepository creates a new director preference repository.
func NewDirectorRepository(db *database.DB) DirectorRepository {
	return &directorRepository{db: db}
}

// List retrieves all director preferences for a user.
func (r *directorRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.DirectorPreference, error) {
	query := `
		SELECT id, user_id, director_name, rating, created_at
		FROM director_preferences
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list director preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*models.DirectorPreference
	for rows.Next() {
		var p models.DirectorPreference
		if err := rows.Scan(&p.ID, &p.UserID, &p.DirectorName, &p.Rating, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan director preference: %w", err)
		}
		prefs = append(prefs, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating director preferences: %w", err)
	}

	return prefs, nil
}

// Add appends a director preference.
func (r *directorRepository) Add(ctx context.Context, userID uuid.UUID, directorName string, rating int) (*models.DirectorPreference, error) {
	query := `
		INSERT INTO director_preferences (id, user_id, director_name, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, director_name, rating, created_at`

	var p models.DirectorPreference
	err := r.db.QueryRow(ctx, query, uuid.New(), userID, directorName, rating, time.Now()).
		Scan(&p.ID, &p.UserID, &p.DirectorName, &p.Rating, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add director preference: %w", err)
	}

	return &p, nil
}

// Delete removes a director preference by id.
func (r *directorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM director_preferences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete director preference: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Ensure directorRepository implements DirectorRepository at compile time.
var _ DirectorRepository = (*directorRepository)(nil)
