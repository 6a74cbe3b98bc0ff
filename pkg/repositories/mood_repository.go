package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reeltaste/reeltaste-engine/pkg/database"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
)

// MoodRepository defines the interface for mood preference data access.
type MoodRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.MoodPreference, error)
	// Set atomically inserts or updates the rating for (user, mood).
	Set(ctx context.Context, userID uuid.UUID, mood string, rating int) (*models.MoodPreference, error)
}

// moodRepository implements MoodRepository using PostgreSQL.
type moodRepository struct {
	db *database.DB
}

// NewMoodRepository creates a new mood preference repository.
func NewMoodRepository(db *database.DB) MoodRepository {
	return &moodRepository{db: db}
}

// List retrieves all mood preferences for a user.
func (r *moodRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.MoodPreference, error) {
	query := `
		SELECT id, user_id, mood, rating, created_at, updated_at
		FROM mood_preferences
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*models.MoodPreference
	for rows.Next() {
		var p models.MoodPreference
		if err := rows.Scan(&p.ID, &p.UserID, &p.Mood, &p.Rating, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood preference: %w", err)
		}
		prefs = append(prefs, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mood preferences: %w", err)
	}

	return prefs, nil
}

// Set atomically inserts or updates the rating for (user, mood).
func (r *moodRepository) Set(ctx context.Context, userID uuid.UUID, mood string, rating int) (*models.MoodPreference, error) {
	query := `
		INSERT INTO mood_preferences (id, user_id, mood, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id, mood) DO UPDATE
		SET rating = EXCLUDED.rating,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, mood, rating, created_at, updated_at`

	var p models.MoodPreference
	err := r.db.QueryRow(ctx, query, uuid.New(), userID, mood, rating, time.Now()).
		Scan(&p.ID, &p.UserID, &p.Mood, &p.Rating, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to set mood preference: %w", err)
	}

	return &p, nil
}

// Ensure moodRepository implements MoodRepository at compile time.
var _ MoodRepository = (*moodRepository)(nil)
