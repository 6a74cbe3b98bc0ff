package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeltaste/reeltaste-engine/pkg/llm"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

const recsReply = `{
  "recommendations": [
    {"title": "The Nice Guys", "year": 2016, "mediaType": "film", "reason": "buddy comedy", "imdbScore": 7.3, "rottenTomatoesScore": 91},
    {"title": "Barry", "year": 2018, "mediaType": "tv", "reason": "dark comedy", "imdbScore": 8.4, "rottenTomatoesScore": 99}
  ]
}`

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func newRecsTestServer(t *testing.T, client llm.Client) (*http.ServeMux, *fakeRecLogRepo, *fakeUserRepo) {
	t.Helper()

	users := newFakeUserRepo()
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
	recLog := &fakeRecLogRepo{}
	recService := services.NewRecommendationService(profileService, recLog, client, nil, testLogger())

	mux := http.NewServeMux()
	NewRecommendationsHandler(recService, testLogger()).RegisterRoutes(mux)
	return mux, recLog, users
}

func TestRecommendationsHandler_Generate(t *testing.T) {
	mock := llm.NewMockClient()
	mock.CompleteFunc = func(ctx context.Context, system, prompt string, temperature float32) (string, error) {
		return recsReply, nil
	}

	mux, recLog, users := newRecsTestServer(t, mock)
	user, err := users.Create(context.Background())
	require.NoError(t, err)

	w := postJSON(mux, "/api/users/"+user.ID.String()+"/recommendations", `{"request": "something funny"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recs []*models.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "The Nice Guys", recs[0].Title)

	// The log gained one row per returned recommendation.
	require.Len(t, recLog.entries, 2)
	require.NotNil(t, recLog.entries[0].Prompt)
	assert.Equal(t, "something funny", *recLog.entries[0].Prompt)
}

func TestRecommendationsHandler_GenerateProviderFailure(t *testing.T) {
	mock := llm.NewMockClient()
	mock.CompleteFunc = func(ctx context.Context, system, prompt string, temperature float32) (string, error) {
		return "", llm.NewError(llm.ErrorTypeEndpoint, "connection failed", nil)
	}

	mux, _, users := newRecsTestServer(t, mock)
	user, err := users.Create(context.Background())
	require.NoError(t, err)

	w := postJSON(mux, "/api/users/"+user.ID.String()+"/recommendations", `{}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
}

func TestRecommendationsHandler_ParseRequest(t *testing.T) {
	mock := llm.NewMockClient()
	mock.CompleteFunc = func(ctx context.Context, system, prompt string, temperature float32) (string, error) {
		return `{"intent": "add_favourite", "details": {"similar_to": "Alien"}}`, nil
	}

	mux, _, _ := newRecsTestServer(t, mock)

	w := postJSON(mux, "/api/parse-request", `{"request": "add Alien to my favourites"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var parsed models.ParsedRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Equal(t, models.IntentAddFavourite, parsed.Intent)
	assert.Equal(t, "Alien", parsed.Details["similar_to"])
}

func TestRecommendationsHandler_ParseRequestEmpty(t *testing.T) {
	mux, _, _ := newRecsTestServer(t, llm.NewMockClient())

	w := postJSON(mux, "/api/parse-request", `{"request": "  "}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationsHandler_UpdateOutcome(t *testing.T) {
	mock := llm.NewMockClient()
	mock.CompleteFunc = func(ctx context.Context, system, prompt string, temperature float32) (string, error) {
		return recsReply, nil
	}

	mux, recLog, users := newRecsTestServer(t, mock)
	user, err := users.Create(context.Background())
	require.NoError(t, err)

	w := postJSON(mux, "/api/users/"+user.ID.String()+"/recommendations", `{}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, recLog.entries)

	id := recLog.entries[0].ID
	r := httptest.NewRequest(http.MethodPatch, "/api/recommendation-log/"+id.String()+"/outcome",
		jsonBody(`{"outcome": "watched"}`))
	w2 := httptest.NewRecorder()
	mux.ServeHTTP(w2, r)
	require.Equal(t, http.StatusOK, w2.Code)

	require.NotNil(t, recLog.entries[0].Outcome)
	assert.Equal(t, models.OutcomeWatched, *recLog.entries[0].Outcome)
}

func TestRecommendationsHandler_UpdateOutcomeInvalid(t *testing.T) {
	mux, _, _ := newRecsTestServer(t, llm.NewMockClient())

	r := httptest.NewRequest(http.MethodPatch,
		"/api/recommendation-log/00000000-0000-0000-0000-000000000001/outcome",
		jsonBody(`{"outcome": "shrugged"}`))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationsHandler_ListLog(t *testing.T) {
	mock := llm.NewMockClient()
	mock.CompleteFunc = func(ctx context.Context, system, prompt string, temperature float32) (string, error) {
		return recsReply, nil
	}

	mux, _, users := newRecsTestServer(t, mock)
	user, err := users.Create(context.Background())
	require.NoError(t, err)

	postJSON(mux, "/api/users/"+user.ID.String()+"/recommendations", `{}`, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID.String()+"/recommendation-log", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []*models.RecommendationLogEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 2)
}
