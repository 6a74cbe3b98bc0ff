package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/repositories"
)

// ProfileService manages everything a user has told us about their taste:
// preferences, favourites, watch history, rejected items and the watchlist.
type ProfileService struct {
	users      repositories.UserRepository
	genres     repositories.GenreRepository
	moods      repositories.MoodRepository
	actors     repositories.ActorRepository
	directors  repositories.DirectorRepository
	favourites repositories.FavouriteRepository
	history    repositories.HistoryRepository
	rejected   repositories.RejectedRepository
	watchlist  repositories.WatchlistRepository
	logger     *zap.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(
	users repositories.UserRepository,
	genres repositories.GenreRepository,
	moods repositories.MoodRepository,
	actors repositories.ActorRepository,
	directors repositories.DirectorRepository,
	favourites repositories.FavouriteRepository,
	history repositories.HistoryRepository,
	rejected repositories.RejectedRepository,
	watchlist repositories.WatchlistRepository,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		users:      users,
		genres:     genres,
		moods:      moods,
		actors:     actors,
		directors:  directors,
		favourites: favourites,
		history:    history,
		rejected:   rejected,
		watchlist:  watchlist,
		logger:     logger.Named("profile_service"),
	}
}

// GetProfile aggregates the user's full taste profile. The watchlist is not
// part of the profile; it has its own endpoint.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	genres, err := s.genres.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	actors, err := s.actors.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	directors, err := s.directors.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	moods, err := s.moods.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	favourites, err := s.favourites.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.history.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	rejected, err := s.rejected.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		User:       user,
		Genres:     genres,
		Actors:     actors,
		Directors:  directors,
		Moods:      moods,
		Favourites: favourites,
		History:    history,
		Rejected:   rejected,
	}, nil
}

// CompleteOnboarding marks the user's onboarding as done.
func (s *ProfileService) CompleteOnboarding(ctx context.Context, userID uuid.UUID) error {
	return s.users.CompleteOnboarding(ctx, userID)
}

func (s *ProfileService) ListGenres(ctx context.Context, userID uuid.UUID) ([]*models.GenrePreference, error) {
	return s.genres.List(ctx, userID)
}

// SetGenre inserts or overwrites the rating for (user, genre).
func (s *ProfileService) SetGenre(ctx context.Context, userID uuid.UUID, genre string, rating int) (*models.GenrePreference, error) {
	return s.genres.Set(ctx, userID, genre, rating)
}

func (s *ProfileService) ListMoods(ctx context.Context, userID uuid.UUID) ([]*models.MoodPreference, error) {
	return s.moods.List(ctx, userID)
}

// SetMood inserts or overwrites the rating for (user, mood).
func (s *ProfileService) SetMood(ctx context.Context, userID uuid.UUID, mood string, rating int) (*models.MoodPreference, error) {
	return s.moods.Set(ctx, userID, mood, rating)
}

func (s *ProfileService) ListActors(ctx context.Context, userID uuid.UUID) ([]*models.ActorPreference, error) {
	return s.actors.List(ctx, userID)
}

func (s *ProfileService) AddActor(ctx context.Context, userID uuid.UUID, actorName string, rating int) (*models.ActorPreference, error) {
	return s.actors.Add(ctx, userID, actorName, rating)
}

func (s *ProfileService) DeleteActor(ctx context.Context, id uuid.UUID) error {
	return s.actors.Delete(ctx, id)
}

func (s *ProfileService) ListDirectors(ctx context.Context, userID uuid.UUID) ([]*models.DirectorPreference, error) {
	return s.directors.List(ctx, userID)
}

func (s *ProfileService) AddDirector(ctx context.Context, userID uuid.UUID, directorName string, rating int) (*models.DirectorPreference, error) {
	return s.directors.Add(ctx, userID, directorName, rating)
}

func (s *ProfileService) DeleteDirector(ctx context.Context, id uuid.UUID) error {
	return s.directors.Delete(ctx, id)
}

func (s *ProfileService) ListFavourites(ctx context.Context, userID uuid.UUID) ([]*models.FavouriteTitle, error) {
	return s.favourites.List(ctx, userID)
}

func (s *ProfileService) AddFavourite(ctx context.Context, fav *models.FavouriteTitle) (*models.FavouriteTitle, error) {
	return s.favourites.Add(ctx, fav)
}

func (s *ProfileService) DeleteFavourite(ctx context.Context, id uuid.UUID) error {
	return s.favourites.Delete(ctx, id)
}

func (s *ProfileService) ListHistory(ctx context.Context, userID uuid.UUID) ([]*models.WatchHistoryItem, error) {
	return s.history.List(ctx, userID)
}

func (s *ProfileService) AddHistory(ctx context.Context, item *models.WatchHistoryItem) (*models.WatchHistoryItem, error) {
	return s.history.Add(ctx, item)
}

func (s *ProfileService) UpdateHistoryRating(ctx context.Context, id uuid.UUID, rating string) error {
	return s.history.UpdateRating(ctx, id, rating)
}

func (s *ProfileService) ListRejected(ctx context.Context, userID uuid.UUID) ([]*models.RejectedItem, error) {
	return s.rejected.List(ctx, userID)
}

func (s *ProfileService) AddRejected(ctx context.Context, item *models.RejectedItem) (*models.RejectedItem, error) {
	return s.rejected.Add(ctx, item)
}

func (s *ProfileService) ListWatchlist(ctx context.Context, userID uuid.UUID) ([]*models.WatchlistItem, error) {
	return s.watchlist.List(ctx, userID)
}

func (s *ProfileService) AddWatchlistItem(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error) {
	return s.watchlist.Add(ctx, item)
}

func (s *ProfileService) DeleteWatchlistItem(ctx context.Context, id uuid.UUID) error {
	return s.watchlist.Delete(ctx, id)
}

func (s *ProfileService) UpdateWatchlistPriority(ctx context.Context, id uuid.UUID, priority int) error {
	return s.watchlist.UpdatePriority(ctx, id, priority)
}
