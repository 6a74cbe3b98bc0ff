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

// WatchlistRepository defines the interface for watchlist data access.
type WatchlistRepository interface {
	// List retrieves the watchlist ordered by priority (high first), then
	// most recently added.
	List(ctx context.Context, userID uuid.UUID) ([]*models.WatchlistItem, error)
	Add(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdatePriority(ctx context.Context, id uuid.UUID, priority int) error
}

// watchlistRepository implements WatchlistRepository using PostgreSQL.
type watchlistRepository struct {
	db *database.DB
}

// NewWatchlistRepository creates a new watchlist repository.
func NewWatchlistRepository(db *database.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

// List retrieves the watchlist ordered by priority desc, added date desc.
func (r *watchlistRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.WatchlistItem, error) {
	query := `
		SELECT id, user_id, title, media_type, year, priority, recommendation_reason, added_date, created_at
		FROM watchlist
		WHERE user_id = $1
		ORDER BY priority DESC, added_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	defer rows.Close()

	var items []*models.WatchlistItem
	for rows.Next() {
		var w models.WatchlistItem
		err := rows.Scan(&w.ID, &w.UserID, &w.Title, &w.MediaType, &w.Year,
			&w.Priority, &w.RecommendationReason, &w.AddedDate, &w.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watchlist item: %w", err)
		}
		items = append(items, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist: %w", err)
	}

	return items, nil
}

// Add saves a title for later.
func (r *watchlistRepository) Add(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error) {
	query := `
		INSERT INTO watchlist (id, user_id, title, media_type, year, priority, recommendation_reason, added_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, user_id, title, media_type, year, priority, recommendation_reason, added_date, created_at`

	var w models.WatchlistItem
	err := r.db.QueryRow(ctx, query,
		uuid.New(), item.UserID, item.Title, item.MediaType, item.Year,
		item.Priority, item.RecommendationReason, time.Now(),
	).Scan(&w.ID, &w.UserID, &w.Title, &w.MediaType, &w.Year,
		&w.Priority, &w.RecommendationReason, &w.AddedDate, &w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add watchlist item: %w", err)
	}

	return &w, nil
}

// Delete removes a watchlist item by id.
func (r *watchlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM watchlist WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePriority changes an item's priority.
func (r *watchlistRepository) UpdatePriority(ctx context.Context, id uuid.UUID, priority int) error {
	result, err := r.db.Exec(ctx, `UPDATE watchlist SET priority = $1 WHERE id = $2`, priority, id)
	if err != nil {
		return fmt.Errorf("failed to update watchlist priority: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Ensure watchlistRepository implements WatchlistRepository at compile time.
var _ WatchlistRepository = (*watchlistRepository)(nil)
