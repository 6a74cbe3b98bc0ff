package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/jsonutil"
	"github.com/reeltaste/reeltaste-engine/pkg/llm"
	"github.com/reeltaste/reeltaste-engine/pkg/models"
	"github.com/reeltaste/reeltaste-engine/pkg/prompts"
	"github.com/reeltaste/reeltaste-engine/pkg/repositories"
)

// profilePromptLabel is logged as the prompt for recommendations generated
// without an explicit user request.
const profilePromptLabel = "profile-based"

// parseCacheTTL bounds how long a cached intent classification is served.
// Classification is deterministic enough at low temperature that identical
// requests do not need a fresh completion each time.
const parseCacheTTL = time.Hour

// RecommendationService generates recommendations from a user's taste
// profile via an external completion provider, and records each surfaced
// title in the recommendation log.
type RecommendationService struct {
	profiles *ProfileService
	log      repositories.RecommendationLogRepository
	client   llm.Client
	cache    *redis.Client
	logger   *zap.Logger
}

// NewRecommendationService creates a new recommendation service. cache may
// be nil, which disables parse-request caching.
func NewRecommendationService(
	profiles *ProfileService,
	log repositories.RecommendationLogRepository,
	client llm.Client,
	cache *redis.Client,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		profiles: profiles,
		log:      log,
		client:   client,
		cache:    cache,
		logger:   logger.Named("recommendation_service"),
	}
}

// recommendationsReply is the provider's reply schema. A reply without the
// recommendations key decodes to an empty list, not an error.
type recommendationsReply struct {
	Recommendations []*models.Recommendation `json:"recommendations"`
}

// Generate assembles a prompt from the user's profile and the optional
// free-text request, makes a single completion call, and logs every decoded
// recommendation before returning them. A failed log write is logged and
// swallowed; the user still gets their recommendations.
func (s *RecommendationService) Generate(ctx context.Context, userID uuid.UUID, request string) ([]*models.Recommendation, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt := prompts.BuildRecommendationPrompt(profile, request)
	s.logger.Debug("generating recommendations",
		zap.String("user_id", userID.String()),
		zap.Int("prompt_length", len(prompt)))

	response, err := s.client.Complete(ctx, prompts.RecommendationSystemPrompt, prompt, prompts.RecommendationTemperature)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	reply, err := llm.ParseJSONResponse[recommendationsReply](response)
	if err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}

	promptLabel := request
	if promptLabel == "" {
		promptLabel = profilePromptLabel
	}
	for _, rec := range reply.Recommendations {
		year := rec.Year
		reason := rec.Reason
		entry := &models.RecommendationLogEntry{
			UserID:    userID,
			Title:     rec.Title,
			MediaType: rec.MediaType,
			Year:      &year,
			Reason:    &reason,
			Prompt:    &promptLabel,
		}
		if _, err := s.log.Append(ctx, entry); err != nil {
			s.logger.Error("failed to log recommendation",
				zap.String("user_id", userID.String()),
				zap.String("title", rec.Title),
				zap.Error(err))
		}
	}

	s.logger.Info("recommendations generated",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(reply.Recommendations)),
		zap.String("model", s.client.Model()))

	if reply.Recommendations == nil {
		return []*models.Recommendation{}, nil
	}
	return reply.Recommendations, nil
}

// parsedReply tolerates non-string detail values from the provider.
type parsedReply struct {
	Intent  string                     `json:"intent"`
	Details map[string]json.RawMessage `json:"details"`
}

// ParseRequest classifies a free-text request into an intent plus extracted
// details. Results are cached by request text when Redis is configured.
func (s *RecommendationService) ParseRequest(ctx context.Context, request string) (*models.ParsedRequest, error) {
	cacheKey := parseCacheKey(request)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var parsed models.ParsedRequest
			if err := json.Unmarshal([]byte(cached), &parsed); err == nil {
				s.logger.Debug("parse request cache hit", zap.String("intent", parsed.Intent))
				return &parsed, nil
			}
		}
	}

	response, err := s.client.Complete(ctx, prompts.ParseRequestSystemPrompt, request, prompts.ParseRequestTemperature)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	reply, err := llm.ParseJSONResponse[parsedReply](response)
	if err != nil {
		return nil, fmt.Errorf("failed to decode parsed request: %w", err)
	}

	parsed := &models.ParsedRequest{
		Intent:  reply.Intent,
		Details: make(map[string]string, len(reply.Details)),
	}
	switch parsed.Intent {
	case models.IntentRecommendation, models.IntentAddFavourite:
	default:
		parsed.Intent = models.IntentUnknown
	}
	for key, raw := range reply.Details {
		parsed.Details[key] = jsonutil.FlexibleStringValue(raw)
	}

	if s.cache != nil {
		if data, err := json.Marshal(parsed); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, parseCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache parsed request", zap.Error(err))
			}
		}
	}

	return parsed, nil
}

// ListLog retrieves the user's recommendation log, newest first.
func (s *RecommendationService) ListLog(ctx context.Context, userID uuid.UUID) ([]*models.RecommendationLogEntry, error) {
	return s.log.List(ctx, userID)
}

// UpdateOutcome records what the user did with a recommendation.
func (s *RecommendationService) UpdateOutcome(ctx context.Context, id uuid.UUID, outcome string) error {
	return s.log.UpdateOutcome(ctx, id, outcome)
}

func parseCacheKey(request string) string {
	sum := sha256.Sum256([]byte(request))
	return "parse_request:" + hex.EncodeToString(sum[:])
}
