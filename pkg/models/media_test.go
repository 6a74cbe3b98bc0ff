package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMediaType(t *testing.T) {
	assert.True(t, IsValidMediaType(MediaTypeFilm))
	assert.True(t, IsValidMediaType(MediaTypeTV))
	assert.False(t, IsValidMediaType("movie"))
	assert.False(t, IsValidMediaType(""))
}

func TestIsValidHistoryRating(t *testing.T) {
	assert.True(t, IsValidHistoryRating(HistoryRatingLoved))
	assert.True(t, IsValidHistoryRating(HistoryRatingOK))
	assert.True(t, IsValidHistoryRating(HistoryRatingDisliked))
	assert.False(t, IsValidHistoryRating("meh"))
}

func TestIsValidOutcome(t *testing.T) {
	assert.True(t, IsValidOutcome(OutcomeAddedToWatchlist))
	assert.True(t, IsValidOutcome(OutcomeWatched))
	assert.True(t, IsValidOutcome(OutcomeRejected))
	assert.True(t, IsValidOutcome(OutcomeNoAction))
	assert.False(t, IsValidOutcome("ignored"))
}

func TestIsValidRating(t *testing.T) {
	assert.False(t, IsValidRating(0))
	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(6))
}

func TestUserIsAnonymous(t *testing.T) {
	email := "a@x.com"
	assert.True(t, (&User{}).IsAnonymous())
	assert.False(t, (&User{Email: &email}).IsAnonymous())
}
