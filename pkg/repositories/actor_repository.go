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

// ActorRepository defines the interface for actor preference data access.
// Actor preferences are an append-only list, deletable by id.
type ActorRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.ActorPreference, error)
	Add(ctx context.Context, userID uuid.UUID, actorName string, rating int) (*models.ActorPreference, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// actorRepository implements ActorRepository using PostgreSQL.
type actorRepository struct {
	db *database.DB
}

// NewActorRepository creates a new actor preference repository.
func NewActorRepository(db *database.DB) ActorRepository {
	return &actorRepository{db: db}
}

// List retrieves all actor preferences for a user.
func (r *actorRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.ActorPreference, error) {
	query := `
		SELECT id, user_id, actor_name, rating, created_at
		FROM actor_preferences
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actor preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*models.ActorPreference
	for rows.Next() {
		var p models.ActorPreference
		if err := rows.Scan(&p.ID, &p.UserID, &p.ActorName, &p.Rating, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan actor preference: %w", err)
		}
		prefs = append(prefs, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actor preferences: %w", err)
	}

	return prefs, nil
}

// Add appends an actor preference.
func (r *actorRepository) Add(ctx context.Context, userID uuid.UUID, actorName string, rating int) (*models.ActorPreference, error) {
	query := `
		INSERT INTO actor_preferences (id, user_id, actor_name, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, actor_name, rating, created_at`

	var p models.ActorPreference
	err := r.db.QueryRow(ctx, query, uuid.New(), userID, actorName, rating, time.Now()).
		Scan(&p.ID, &p.UserID, &p.ActorName, &p.Rating, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add actor preference: %w", err)
	}

	return &p, nil
}

// Delete removes an actor preference by id.
func (r *actorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM actor_preferences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete actor preference: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Ensure actorRepository implements ActorRepository at compile time.
var _ ActorRepository = (*actorRepository)(nil)
