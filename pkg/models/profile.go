package models

// UserProfile aggregates everything known about a user's taste. It is the
// input to prompt assembly and the payload of the profile endpoint.
type UserProfile struct {
	User       *User                 `json:"user"`
	Genres     []*GenrePreference    `json:"genres"`
	Actors     []*ActorPreference    `json:"actors"`
	Directors  []*DirectorPreference `json:"directors"`
	Moods      []*MoodPreference     `json:"moods"`
	Favourites []*FavouriteTitle     `json:"favourites"`
	History    []*WatchHistoryItem   `json:"history"`
	Rejected   []*RejectedItem       `json:"rejected"`
}
