package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/apperrors"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
)

func testLogger() *zap.Logger { return zap.NewNop() }

// In-memory repository fakes. They implement the real upsert/uniqueness
// semantics so service tests exercise the same contracts as Postgres.

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
	if f.emailTaken(email, uuid.Nil) {
		return nil, apperrors.ErrConflict
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
	if f.emailTaken(email, id) {
		return nil, apperrors.ErrConflict
	}
	u.Email = &email
	u.PasswordHash = &passwordHash
	return u, nil
}

func (f *fakeUserRepo) emailTaken(email string, except uuid.UUID) bool {
	for _, u := range f.users {
		if u.ID != except && u.Email != nil && *u.Email == email {
			return true
		}
	}
	return false
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
			p.UpdatedAt = time.Now()
			return p, nil
		}
	}
	p := &models.GenrePreference{ID: uuid.New(), UserID: userID, Genre: genre, Rating: rating}
	f.prefs = append(f.prefs, p)
	return p, nil
}

type fakeMoodRepo struct {
	prefs []*models.MoodPreference
}

func (f *fakeMoodRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.MoodPreference, error) {
	var out []*models.MoodPreference
	for _, p := range f.prefs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeMoodRepo) Set(ctx context.Context, userID uuid.UUID, mood string, rating int) (*models.MoodPreference, error) {
	for _, p := range f.prefs {
		if p.UserID == userID && p.Mood == mood {
			p.Rating = rating
			return p, nil
		}
	}
	p := &models.MoodPreference{ID: uuid.New(), UserID: userID, Mood: mood, Rating: rating}
	f.prefs = append(f.prefs, p)
	return p, nil
}

type fakeActorRepo struct {
	prefs []*models.ActorPreference
}

func (f *fakeActorRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.ActorPreference, error) {
	var out []*models.ActorPreference
	for _, p := range f.prefs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeActorRepo) Add(ctx context.Context, userID uuid.UUID, actorName string, rating int) (*models.ActorPreference, error) {
	p := &models.ActorPreference{ID: uuid.New(), UserID: userID, ActorName: actorName, Rating: rating}
	f.prefs = append(f.prefs, p)
	return p, nil
}

func (f *fakeActorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, p := range f.prefs {
		if p.ID == id {
			f.prefs = append(f.prefs[:i], f.prefs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeDirectorRepo struct {
	prefs []*models.DirectorPreference
}

func (f *fakeDirectorRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.DirectorPreference, error) {
	var out []*models.DirectorPreference
	for _, p := range f.prefs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeDirectorRepo) Add(ctx context.Context, userID uuid.UUID, directorName string, rating int) (*models.DirectorPreference, error) {
	p := &models.DirectorPreference{ID: uuid.New(), UserID: userID, DirectorName: directorName, Rating: rating}
	f.prefs = append(f.prefs, p)
	return p, nil
}

func (f *fakeDirectorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, p := range f.prefs {
		if p.ID == id {
			f.prefs = append(f.prefs[:i], f.prefs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeFavouriteRepo struct {
	items []*models.FavouriteTitle
}

func (f *fakeFavouriteRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.FavouriteTitle, error) {
	var out []*models.FavouriteTitle
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeFavouriteRepo) Add(ctx context.Context, fav *models.FavouriteTitle) (*models.FavouriteTitle, error) {
	fav.ID = uuid.New()
	fav.CreatedAt = time.Now()
	f.items = append(f.items, fav)
	return fav, nil
}

func (f *fakeFavouriteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeHistoryRepo struct {
	items []*models.WatchHistoryItem
}

func (f *fakeHistoryRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.WatchHistoryItem, error) {
	var out []*models.WatchHistoryItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) Add(ctx context.Context, item *models.WatchHistoryItem) (*models.WatchHistoryItem, error) {
	item.ID = uuid.New()
	if item.WatchedDate.IsZero() {
		item.WatchedDate = time.Now()
	}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeHistoryRepo) UpdateRating(ctx context.Context, id uuid.UUID, rating string) error {
	for _, item := range f.items {
		if item.ID == id {
			item.Rating = &rating
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeRejectedRepo struct {
	items []*models.RejectedItem
}

func (f *fakeRejectedRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.RejectedItem, error) {
	var out []*models.RejectedItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRejectedRepo) Add(ctx context.Context, item *models.RejectedItem) (*models.RejectedItem, error) {
	item.ID = uuid.New()
	f.items = append(f.items, item)
	return item, nil
}

type fakeWatchlistRepo struct {
	items []*models.WatchlistItem
}

func (f *fakeWatchlistRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.WatchlistItem, error) {
	var out []*models.WatchlistItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeWatchlistRepo) Add(ctx context.Context, item *models.WatchlistItem) (*models.WatchlistItem, error) {
	item.ID = uuid.New()
	item.AddedDate = time.Now()
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeWatchlistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeWatchlistRepo) UpdatePriority(ctx context.Context, id uuid.UUID, priority int) error {
	for _, item := range f.items {
		if item.ID == id {
			item.Priority = priority
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type fakeRecLogRepo struct {
	entries []*models.RecommendationLogEntry
}

func (f *fakeRecLogRepo) List(ctx context.Context, userID uuid.UUID) ([]*models.RecommendationLogEntry, error) {
	var out []*models.RecommendationLogEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeRecLogRepo) Append(ctx context.Context, entry *models.RecommendationLogEntry) (*models.RecommendationLogEntry, error) {
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeRecLogRepo) UpdateOutcome(ctx context.Context, id uuid.UUID, outcome string) error {
	for _, entry := range f.entries {
		if entry.ID == id {
			entry.Outcome = &outcome
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// newTestProfileService wires a ProfileService over fresh fakes and returns
// the fakes for direct inspection.
func newTestProfileService() (*ProfileService, *fakeUserRepo) {
	users := newFakeUserRepo()
	svc := NewProfileService(
		users,
		&fakeGenreRepo{},
		&fakeMoodRepo{},
		&fakeActorRepo{},
		&fakeDirectorRepo{},
		&fakeFavouriteRepo{},
		&fakeHistoryRepo{},
		&fakeRejectedRepo{},
		&fakeWatchlistRepo{},
		testLogger(),
	)
	return svc, users
}
