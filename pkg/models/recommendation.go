package models

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is a single suggestion decoded from the completion
// provider's JSON reply. Scores are nil when the model does not know them.
type Recommendation struct {
	Title               string   `json:"title"`
	Year                int      `json:"year"`
	MediaType           string   `json:"mediaType"`
	Reason              string   `json:"reason"`
	IMDBScore           *float64 `json:"imdbScore"`
	RottenTomatoesScore *int     `json:"rottenTomatoesScore"`
}

// RecommendationLogEntry is one surfaced recommendation. Outcome is unset
// until the user takes a terminal action on the title; callers may update
// it repeatedly (no monotonic transition is enforced).
type RecommendationLogEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	MediaType string    `json:"mediaType"`
	Year      *int      `json:"year"`
	Reason    *string   `json:"reason"`
	Prompt    *string   `json:"prompt"`
	Outcome   *string   `json:"outcome"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Request intent constants for natural-language parsing.
const (
	IntentRecommendation = "recommendation"
	IntentAddFavourite   = "add_favourite"
	IntentUnknown        = "unknown"
)

// ParsedRequest is the classification of a free-text request.
type ParsedRequest struct {
	Intent  string            `json:"intent"`
	Details map[string]string `json:"details"`
}
