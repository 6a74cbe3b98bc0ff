package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reeltaste/reeltaste-engine/pkg/database"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
)

// RejectedRepository defines the interface for rejected item data access.
type RejectedRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.RejectedItem, error)
	Add(ctx context.Context, item *models.RejectedItem) (*models.RejectedItem, error)
}

// rejectedRepository implements RejectedRepository using PostgreSQL.
type rejectedRepository struct {
	db *database.DB
}

// NewRejectedRepository creates a new rejected item repository.
func NewRejectedRepository(db *database.DB) RejectedRepository {
	return &rejectedRepository{db: db}
}

// List retrieves all rejected items for a user.
func (r *rejectedRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.RejectedItem, error) {
	query := `
		SELECT id, user_id, title, media_type, year, reason, created_at
		FROM rejected_items
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rejected items: %w", err)
	}
	defer rows.Close()

	var items []*models.RejectedItem
	for rows.Next() {
		var item models.RejectedItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.MediaType, &item.Year, &item.Reason, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rejected item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rejected items: %w", err)
	}

	return items, nil
}

// Add records a declined suggestion.
func (r *rejectedRepository) Add(ctx context.Context, item *models.RejectedItem) (*models.RejectedItem, error) {
	query := `
		INSERT INTO rejected_items (id, user_id, title, media_type, year, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, title, media_type, year, reason, created_at`

	var created models.RejectedItem
	err := r.db.QueryRow(ctx, query,
		uuid.New(), item.UserID, item.Title, item.MediaType, item.Year, item.Reason, time.Now(),
	).Scan(&created.ID, &created.UserID, &created.Title, &created.MediaType, &created.Year, &created.Reason, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add rejected item: %w", err)
	}

	return &created, nil
}

// Ensure rejectedRepository implements RejectedRepository at compile time.
var _ RejectedRepository = (*rejectedRepository)(nil)
