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

// HistoryRepository defines the interface for watch history data access.
type HistoryRepository interface {
	// List retrieves history most recently watched first.
	List(ctx context.Context, userID uuid.UUID) ([]*models.WatchHistoryItem, error)
	Add(ctx context.Context, item *models.WatchHistoryItem) (*models.WatchHistoryItem, error)
	UpdateRating(ctx context.Context, id uuid.UUID, rating string) error
}

// historyRepository implements HistoryRepository using PostgreSQL.
type historyRepository struct {
	db *database.DB
}

// NewHistoryRepository creates a new watch history repository.
func NewHistoryRepository(db *database.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// List retrieves all watch history for a user, most recently watched first.
func (r *historyRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.WatchHistoryItem, error) {
	query := `
		SELECT id, user_id, title, media_type, year, watched_date, rating, notes, created_at, updated_at
		FROM watch_history
		WHERE user_id = $1
		ORDER BY watched_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watch history: %w", err)
	}
	defer rows.Close()

	var items []*models.WatchHistoryItem
	for rows.Next() {
		var h models.WatchHistoryItem
		err := rows.Scan(&h.ID, &h.UserID, &h.Title, &h.MediaType, &h.Year,
			&h.WatchedDate, &h.Rating, &h.Notes, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch history item: %w", err)
		}
		items = append(items, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watch history: %w", err)
	}

	return items, nil
}

// Add records one watch event. A zero WatchedDate defaults to now.
func (r *historyRepository) Add(ctx context.Context, item *models.WatchHistoryItem) (*models.WatchHistoryItem, error) {
	now := time.Now()
	watchedDate := item.WatchedDate
	if watchedDate.IsZero() {
		watchedDate = now
	}

	query := `
		INSERT INTO watch_history (id, user_id, title, media_type, year, watched_date, rating, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, user_id, title, media_type, year, watched_date, rating, notes, created_at, updated_at`

	var h models.WatchHistoryItem
	err := r.db.QueryRow(ctx, query,
		uuid.New(), item.UserID, item.Title, item.MediaType, item.Year,
		watchedDate, item.Rating, item.Notes, now,
	).Scan(&h.ID, &h.UserID, &h.Title, &h.MediaType, &h.Year,
		&h.WatchedDate, &h.Rating, &h.Notes, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add watch history item: %w", err)
	}

	return &h, nil
}

// UpdateRating sets the loved/ok/disliked rating on a history row.
func (r *historyRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating string) error {
	query := `UPDATE watch_history SET rating = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, rating, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update watch history rating: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Ensure historyRepository implements HistoryRepository at compile time.
var _ HistoryRepository = (*historyRepository)(nil)
