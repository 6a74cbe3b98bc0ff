package models

// Media type constants for titles.
const (
	MediaTypeFilm = "film"
	MediaTypeTV   = "tv"
)

// IsValidMediaType checks if the given media type is valid.
func IsValidMediaType(mt string) bool {
	return mt == MediaTypeFilm || mt == MediaTypeTV
}

// Watch history rating constants.
const (
	HistoryRatingLoved    = "loved"
	HistoryRatingOK       = "ok"
	HistoryRatingDisliked = "disliked"
)

// IsValidHistoryRating checks if the given history rating is valid.
func IsValidHistoryRating(r string) bool {
	return r == HistoryRatingLoved || r == HistoryRatingOK || r == HistoryRatingDisliked
}

// Recommendation outcome constants.
const (
	OutcomeAddedToWatchlist = "added_to_watchlist"
	OutcomeWatched          = "watched"
	OutcomeRejected         = "rejected"
	OutcomeNoAction         = "no_action"
)

// IsValidOutcome checks if the given recommendation outcome is valid.
func IsValidOutcome(o string) bool {
	switch o {
	case OutcomeAddedToWatchlist, OutcomeWatched, OutcomeRejected, OutcomeNoAction:
		return true
	}
	return false
}

// Preference ratings are a 1-5 scale. Ratings of 4 and above are treated as
// "liked" and 2 and below as "disliked" when assembling prompts.
const (
	RatingMin      = 1
	RatingMax      = 5
	LikedThreshold = 4
	AvoidThreshold = 2
)

// IsValidRating checks that a preference rating is on the 1-5 scale.
func IsValidRating(r int) bool {
	return r >= RatingMin && r <= RatingMax
}
