// Package prompts assembles natural-language prompts for the completion
// provider. Everything here is pure and deterministic so it can be tested
// without network access.
package prompts

import (
	"fmt"
	"strings"

	"github.com/reeltaste/reeltaste-engine/pkg/models"
)

// Truncation limits keep the prompt bounded for users with long histories.
const (
	maxRejectedTitles = 10
	maxWatchedTitles  = 20
)

// FallbackPrompt is emitted when the profile has nothing to say and no
// request was given.
const FallbackPrompt = "Please suggest 5 popular, highly-rated films and TV shows across different genres for a new user."

// Sampling temperatures per call site.
const (
	RecommendationTemperature float32 = 0.8
	ParseRequestTemperature   float32 = 0.3
)

// RecommendationSystemPrompt fixes the provider's role and reply schema for
// recommendation generation.
const RecommendationSystemPrompt = `You are a film and TV recommendation expert. You analyze user preferences and suggest personalized recommendations.

Always respond with valid JSON in this exact format:
{
  "recommendations": [
    {
      "title": "Title Name",
      "year": 2020,
      "mediaType": "film" or "tv",
      "reason": "Brief explanation of why this matches their taste",
      "imdbScore": 8.5,
      "rottenTomatoesScore": 92
    }
  ]
}

For scores:
- imdbScore: IMDB rating out of 10 (e.g., 8.5). Use null if unknown.
- rottenTomatoesScore: Rotten Tomatoes critic score as percentage (e.g., 92 for 92%). Use null if unknown.

Provide 3-5 recommendations. Be specific about why each recommendation fits the user's profile.
Focus on lesser-known gems alongside popular choices. Consider both what they love AND what they've disliked to refine suggestions.`

// ParseRequestSystemPrompt fixes the role and reply schema for free-text
// intent classification.
const ParseRequestSystemPrompt = `Parse the user's request about films/TV. Identify the intent and extract details.

Respond with JSON:
{
  "intent": "recommendation" | "add_favourite" | "unknown",
  "details": {
    "mood": "optional mood they want",
    "similar_to": "optional title they want something similar to",
    "genre": "optional genre",
    "mediaType": "film" | "tv" | "any"
  }
}`

// BuildRecommendationPrompt maps a profile snapshot plus an optional
// free-text request into the ordered prompt sections. Only non-empty
// sections are emitted, always in the same order. An entirely empty input
// yields FallbackPrompt.
func BuildRecommendationPrompt(profile *models.UserProfile, userRequest string) string {
	var sections []string

	if userRequest != "" {
		sections = append(sections, fmt.Sprintf("USER REQUEST: %q", userRequest))
	}

	var likedGenres, dislikedGenres []string
	for _, g := range profile.Genres {
		switch {
		case g.Rating >= models.LikedThreshold:
			likedGenres = append(likedGenres, g.Genre)
		case g.Rating <= models.AvoidThreshold:
			dislikedGenres = append(dislikedGenres, g.Genre)
		}
	}
	if len(likedGenres) > 0 {
		sections = append(sections, "FAVOURITE GENRES: "+strings.Join(likedGenres, ", "))
	}
	if len(dislikedGenres) > 0 {
		sections = append(sections, "GENRES TO AVOID: "+strings.Join(dislikedGenres, ", "))
	}

	var likedActors []string
	for _, a := range profile.Actors {
		if a.Rating >= models.LikedThreshold {
			likedActors = append(likedActors, a.ActorName)
		}
	}
	if len(likedActors) > 0 {
		sections = append(sections, "FAVOURITE ACTORS: "+strings.Join(likedActors, ", "))
	}

	var likedDirectors []string
	for _, d := range profile.Directors {
		if d.Rating >= models.LikedThreshold {
			likedDirectors = append(likedDirectors, d.DirectorName)
		}
	}
	if len(likedDirectors) > 0 {
		sections = append(sections, "FAVOURITE DIRECTORS: "+strings.Join(likedDirectors, ", "))
	}

	var likedMoods []string
	for _, m := range profile.Moods {
		if m.Rating >= models.LikedThreshold {
			likedMoods = append(likedMoods, m.Mood)
		}
	}
	if len(likedMoods) > 0 {
		sections = append(sections, "PREFERRED MOODS: "+strings.Join(likedMoods, ", "))
	}

	if len(profile.Favourites) > 0 {
		entries := make([]string, 0, len(profile.Favourites))
		for _, f := range profile.Favourites {
			entry := fmt.Sprintf("%s (%s)", f.Title, f.MediaType)
			if f.Reason != nil && *f.Reason != "" {
				entry += fmt.Sprintf(" - %q", *f.Reason)
			}
			entries = append(entries, entry)
		}
		sections = append(sections, "LOVED TITLES: "+strings.Join(entries, "; "))
	}

	var lovedHistory, dislikedHistory []string
	for _, h := range profile.History {
		if h.Rating == nil {
			continue
		}
		switch *h.Rating {
		case models.HistoryRatingLoved:
			lovedHistory = append(lovedHistory, h.Title)
		case models.HistoryRatingDisliked:
			dislikedHistory = append(dislikedHistory, h.Title)
		}
	}
	if len(lovedHistory) > 0 {
		sections = append(sections, "RECENTLY LOVED: "+strings.Join(lovedHistory, ", "))
	}
	if len(dislikedHistory) > 0 {
		sections = append(sections, "RECENTLY DISLIKED: "+strings.Join(dislikedHistory, ", "))
	}

	if len(profile.Rejected) > 0 {
		rejected := profile.Rejected
		if len(rejected) > maxRejectedTitles {
			rejected = rejected[:maxRejectedTitles]
		}
		titles := make([]string, 0, len(rejected))
		for _, r := range rejected {
			titles = append(titles, r.Title)
		}
		sections = append(sections, "ALREADY REJECTED (don't suggest): "+strings.Join(titles, ", "))
	}

	if len(profile.History) > 0 {
		watched := profile.History
		if len(watched) > maxWatchedTitles {
			watched = watched[:maxWatchedTitles]
		}
		titles := make([]string, 0, len(watched))
		for _, h := range watched {
			titles = append(titles, h.Title)
		}
		sections = append(sections, "ALREADY WATCHED (don't suggest): "+strings.Join(titles, ", "))
	}

	if len(sections) == 0 {
		return FallbackPrompt
	}

	return strings.Join(sections, "\n\n")
}
