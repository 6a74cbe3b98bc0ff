package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/apperrors"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

func testLogger() *zap.Logger { return zap.NewNop() }

// Minimal in-memory repository fakes for exercising handlers end to end
// without Postgres.

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context) (*models.User, error) {
	u := &models.User{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) CreateWithCredentials(ctx context.Context, email, passwordHash string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return nil, apperrors.ErrConflict
		}
	}
	u := &models.User{
		ID:           uuid.New(),
		Email:        &email,
		PasswordHash: &passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) CompleteOnboarding(ctx context.Context, id uuid.UUID) error {
	u, ok := f.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.OnboardingComplete = true
	return nil
}

func (f *fakeUserRepo) LinkCredentials(ctx context.Context, id uuid.UUID, email, passwordHash string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	for _, other := range f.users {
		if other.ID != id && other.Email != nil && *other.Email == email {
			return nil, apperrors.ErrConflict
		}
	}
	u.Email = &email
	u.PasswordHash = &passwordHash
	return u, nil
}

type fakeGenreRepo struct {
	prefs []*models.GenrePreference
}

func (f *fakeGenreRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.GenrePreference, error) {
	var out []*models.GenrePreference
	for _, p := range f.prefs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGenreRepo) Set(ctx context.Context, userID uuid.UUID, genre string, rating int) (*models.GenrePreference, error) {
	for _, p := range f.prefs {
		if p.UserID == userID && p.Genre == genre {
			p.Rating = rating
			return p, nil
		}
	}
	p := &models.GenrePreference{ID: uuid.New(), UserID: userID, Genre: genre, Rating: rating}
	f.prefs = append(f.prefs, p)
	return p, nil
}

type fakeMoodRepo struct{}

func (fakeMoodRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.MoodPreference, error) {
	return nil, nil
}

func (fakeMoodRepo) Set(ctx context.Context, userID uuid.UUID, mood string, rating int) (*models.MoodPreference, error) {
	return &models.MoodPreference{ID: uuid.New(), UserID: userID, Mood: mood, Rating: rating}, nil
}

type fakeActorRepo struct{}

func (fakeActorRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.ActorPreference, error) {
	return nil, nil
}

func (fakeActorRepo) Add(ctx context.Context, userID uuid.UUID, actorName string, rating int) (*models.ActorPreference, error) {
	return &models.ActorPreference{ID: uuid.New(), UserID: userID, ActorName: actorName, Rating: rating}, nil
}

func (fakeActorRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeDirectorRepo struct{}

func (fakeDirectorRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.DirectorPreference, error) {
	return nil, nil
}

func (fakeDirectorRepo) Add(ctx context.Context, userID uuid.UUID, directorName string, rating int) (*models.DirectorPreference, error) {
	return &models.DirectorPreference{ID: uuid.New(), UserID: userID, DirectorName: directorName, Rating: rating}, nil
}

func (fakeDirectorRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeFavouriteRepo struct{}

func (fakeFavouriteRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.FavouriteTitle, error) {
	return nil, nil
}

func (fakeFavouriteRepo) Add(ctx context.Context, fav *models.FavouriteTitle) (*models.FavouriteTitle, error) {
	fav.ID = uuid.New()
	return fav, nil
}

func (fakeFavouriteRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeHistoryRepo struct{}

func (fakeHistoryRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.WatchHistoryItem, error) {
	return nil, nil
}

func (fakeHistoryRepo) Add(ctx context.Context, item *models.WatchHistoryItem) (*models.WatchHistoryItem, error) {
	item.ID = uuid.New()
	return item, nil
}

func (fakeHistoryRepo) UpdateRating(ctx context.Context, id uuid.UUID, rating string) error {
	return nil
}

type fakeRejectedRepo struct{}

func (fakeRejectedRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.RejectedItem, error) {
	return nil, nil
}

func (fakeRejectedRepo) Add(ctx context.Context, item *models.RejectedItem) (*models.RejectedItem, error) {
	item.ID = uuid.New()
	return item, nil
}

type fakeWatchlistRepo struct{}

func (fakeWatchlistRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.WatchlistItem, error) {
	return nil, nil
}

func (fakeWatchlistRepo) Add(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error) {
	item.ID = uuid.New()
	return item, nil
}

func (fakeWatchlistRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (fakeWatchlistRepo) UpdatePriority(ctx context.Context, id uuid.UUID, priority int) error {
	return nil
}

type fakeRecLogRepo struct {
	entries []*models.RecommendationLogEntry
}

func (f *fakeRecLogRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.RecommendationLogEntry, error) {
	var out []*models.RecommendationLogEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRecLogRepo) Append(ctx context.Context, entry *models.RecommendationLogEntry) (*models.RecommendationLogEntry, error) {
	entry.ID = uuid.New()
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeRecLogRepo) UpdateOutcome(ctx context.Context, id uuid.UUID, outcome string) error {
	for _, e := range f.entries {
		if e.ID == id {
			e.Outcome = &outcome
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// newTestServices builds the full service stack over fakes.
func newTestServices() (*services.AuthService, *services.ProfileService, *fakeUserRepo) {
	users := newFakeUserRepo()
	authService := services.NewAuthService(users, testLogger())
	profileService := services.NewProfileService(
		users,
		&fakeGenreRepo{},
		fakeMoodRepo{},
		fakeActorRepo{},
		fakeDirectorRepo{},
		fakeFavouriteRepo{},
		fakeHistoryRepo{},
		fakeRejectedRepo{},
		fakeWatchlistRepo{},
		testLogger(),
	)
	return authService, profileService, users
}
