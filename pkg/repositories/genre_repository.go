package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reeltaste/reeltaste-engine/pkg/database"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
)

// GenreRepository defines the interface for genre preference data access.
type GenreRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.GenrePreference, error)
	// Set atomically inserts or updates the rating for (user, genre).
	Set(ctx context.Context, userID uuid.UUID, genre string, rating int) (*models.GenrePreference, error)
}

// genreRepository implements GenreRepository using PostgreSQL.
type genreRepository struct {
	db *database.DB
}

// NewGenreRepository creates a new genre preference repository.
func NewGenreRepository(db *database.DB) GenreRepository {
	return &genreRepository{db: db}
}

// List retrieves all genre preferences for a user.
func (r *genreRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.GenrePreference, error) {
	query := `
		SELECT id, user_id, genre, rating, created_at, updated_at
		FROM genre_preferences
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list genre preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*models.GenrePreference
	for rows.Next() {
		var p models.GenrePreference
		if err := rows.Scan(&p.ID, &p.UserID, &p.Genre, &p.Rating, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan genre preference: %w", err)
		}
		prefs = append(prefs, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genre preferences: %w", err)
	}

	return prefs, nil
}

// Set atomically inserts or updates the rating for (user, genre).
// The ON CONFLICT clause closes the lost-update window a read-then-write
// upsert would have under concurrent requests.
func (r *genreRepository) Set(ctx context.Context, userID uuid.UUID, genre string, rating int) (*models.GenrePreference, error) {
	query := `
		INSERT INTO genre_preferences (id, user_id, genre, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id, genre) DO UPDATE
		SET rating = EXCLUDED.rating,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, genre, rating, created_at, updated_at`

	var p models.GenrePreference
	err := r.db.QueryRow(ctx, query, uuid.New(), userID, genre, rating, time.Now()).
		Scan(&p.ID, &p.UserID, &p.Genre, &p.Rating, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to set genre preference: %w", err)
	}

	return &p, nil
}

// Ensure genreRepository implements GenreRepository at compile time.
var _ GenreRepository = (*genreRepository)(nil)
