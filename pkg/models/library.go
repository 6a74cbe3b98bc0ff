package models

import (
	"time"

	"github.com/google/uuid"
)

// FavouriteTitle is a user-declared loved title, used to seed recommendations.
type FavouriteTitle struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	MediaType string    `json:"mediaType"`
	Year      *int      `json:"year"`
	Reason    *string   `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// WatchHistoryItem records one watch event. Rating is one of
// loved/ok/disliked, or nil if the user has not rated it.
type WatchHistoryItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	MediaType   string    `json:"mediaType"`
	Year        *int      `json:"year"`
	WatchedDate time.Time `json:"watchedDate"`
	Rating      *string   `json:"rating"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RejectedItem records a suggestion the user declined.
type RejectedItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	MediaType string    `json:"mediaType"`
	Year      *int      `json:"year"`
	Reason    *string   `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// WatchlistItem is a title saved for later. Higher priority sorts first.
type WatchlistItem struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"userId"`
	Title                string    `json:"title"`
	MediaType            string    `json:"mediaType"`
	Year                 *int      `json:"year"`
	Priority             int       `json:"priority"`
	RecommendationReason *string   `json:"recommendationReason"`
	AddedDate            time.Time `json:"addedDate"`
	CreatedAt            time.Time `json:"createdAt"`
}
