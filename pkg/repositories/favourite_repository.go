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

// FavouriteRepository defines the interface for favourite title data access.
type FavouriteRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*models.FavouriteTitle, error)
	Add(ctx context.Context, fav *models.FavouriteTitle) (*models.FavouriteTitle, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// favouriteRepository implements FavouriteRepository using PostgreSQL.
type favouriteRepository struct {
	db *database.DB
}

// NewFavouriteRepository creates a new favourite title repository.
func NewFavouriteRepository(db *database.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

// List retrieves all favourite titles for a user.
func (r *favouriteRepository) List(ctx context.Context, userID uuid.UUID) ([]*models.FavouriteTitle, error) {
	query := `
		SELECT id, user_id, title, media_type, year, reason, created_at
		FROM favourite_titles
		WHERE user_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favourites: %w", err)
	}
	defer rows.Close()

	var favs []*models.FavouriteTitle
	for rows.Next() {
		var f models.FavouriteTitle
		if err := rows.Scan(&f.ID, &f.UserID, &f.Title, &f.MediaType, &f.Year, &f.Reason, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favourite: %w", err)
		}
		favs = append(favs, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favourites: %w", err)
	}

	return favs, nil
}

// Add appends a favourite title.
func (r *favouriteRepository) Add(ctx context.Context, fav *models.FavouriteTitle) (*models.FavouriteTitle, error) {
	query := `
		INSERT INTO favourite_titles (id, user_id, title, media_type, year, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, title, media_type, year, reason, created_at`

	var f models.FavouriteTitle
	err := r.db.QueryRow(ctx, query,
		uuid.New(), fav.UserID, fav.Title, fav.MediaType, fav.Year, fav.Reason, time.Now(),
	).Scan(&f.ID, &f.UserID, &f.Title, &f.MediaType, &f.Year, &f.Reason, &f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add favourite: %w", err)
	}

	return &f, nil
}

// Delete removes a favourite title by id.
func (r *favouriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM favourite_titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete favourite: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Ensure favouriteRepository implements FavouriteRepository at compile time.
var _ FavouriteRepository = (*favouriteRepository)(nil)
