package models

import (
	"time"

	"github.com/google/uuid"
)

// GenrePreference is a per-user genre rating on a 1-5 scale.
// Unique per (user, genre); setting an existing genre overwrites its rating.
type GenrePreference struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Genre     string    `json:"genre"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MoodPreference is a per-user mood rating, e.g. "relaxing", "intense".
// Unique per (user, mood) with the same upsert semantics as genres.
type MoodPreference struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Mood      string    `json:"mood"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActorPreference is an append-only actor rating. No uniqueness is enforced;
// rows are deletable by id.
type ActorPreference struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ActorName string    `json:"actorName"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// DirectorPreference is an append-only director rating.
type DirectorPreference struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	DirectorName string    `json:"directorName"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
}
