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

// RecommendationLogRepository defines the interface for recommendation log
// data access. One row is appended per surfaced recommendation; the outcome
// is updated later when the user acts on the title.
type RecommendationLogRepository interface {
	// List retrieves log entries newest first.
	List(ctx context.Context, userID uuid.UUID) ([]*models.RecommendationLogEntry, error)
	Append(ctx context.Context, entry *models.RecommendationLogEntry) (*models.RecommendationLogEntry, error)
	// UpdateOutcome sets the outcome. Callers may update repeatedly; no
	// monotonic transition is enforced.
	UpdateOutcome(ctx context.Context, id uuid.UUID, outcome string) error
}

// recommendationLogRepository implements RecommendationLogRepository using PostgreSQL.
type recommendationLogRepository struct {
	db *database.DB
}

// NewRecommendationLogRepository creates a new recommendation log repository.
func NewRecommendationLogRepository(db *database.DB) RecommendationLogRepository {
	return &recommendationLogRepository{db: db}
}

// List retrieves all log entries for a user, newest first.
func (r *recommendationLogRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.RecommendationLogEntry, error) {
	query := `
		SELECT id, user_id, title, media_type, year, reason, prompt, outcome, created_at, updated_at
		FROM recommendation_log
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendation log: %w", err)
	}
	defer rows.Close()

	var entries []*models.RecommendationLogEntry
	for rows.Next() {
		var e models.RecommendationLogEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.MediaType, &e.Year,
			&e.Reason, &e.Prompt, &e.Outcome, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation log entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recommendation log: %w", err)
	}

	return entries, nil
}

// Append records one surfaced recommendation.
func (r *recommendationLogRepository) Append(ctx context.Context, entry *models.RecommendationLogEntry) (*models.RecommendationLogEntry, error) {
	query := `
		INSERT INTO recommendation_log (id, user_id, title, media_type, year, reason, prompt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, user_id, title, media_type, year, reason, prompt, outcome, created_at, updated_at`

	var e models.RecommendationLogEntry
	err := r.db.QueryRow(ctx, query,
		uuid.New(), entry.UserID, entry.Title, entry.MediaType, entry.Year,
		entry.Reason, entry.Prompt, time.Now(),
	).Scan(&e.ID, &e.UserID, &e.Title, &e.MediaType, &e.Year,
		&e.Reason, &e.Prompt, &e.Outcome, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to append recommendation log entry: %w", err)
	}

	return &e, nil
}

// UpdateOutcome sets the outcome on a log entry.
func (r *recommendationLogRepository) UpdateOutcome(ctx context.Context, id uuid.UUID, outcome string) error {
	query := `UPDATE recommendation_log SET outcome = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, outcome, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update recommendation outcome: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Ensure recommendationLogRepository implements RecommendationLogRepository at compile time.
var _ RecommendationLogRepository = (*recommendationLogRepository)(nil)
