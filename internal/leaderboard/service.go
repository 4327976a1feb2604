package leaderboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
)

// Repository reads ranked participants from the ranking store
type Repository interface {
	GetRankedParticipants(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.Participant, error)
}

// Service exposes the ranked leaderboard with a short read-through cache.
// The engine never writes scores; ranking is owned upstream.
type Service interface {
	GetRankedParticipants(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.Participant, error)
}

const (
	cacheSize = 32
	cacheTTL  = 30 * time.Second
)

type service struct {
	repo  Repository
	cache *expirable.LRU[string, []domain.Participant]
}

// NewService creates a leaderboard service backed by the given repository
func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[string, []domain.Participant](cacheSize, nil, cacheTTL),
	}
}

func cacheKey(timeframe domain.Timeframe, limit int) string {
	return string(timeframe) + ":" + strconv.Itoa(limit)
}

// GetRankedParticipants returns up to limit participants ranked by score
// descending. Results are cached briefly; the distribution engine reads
// through the same path as the UI.
func (s *service) GetRankedParticipants(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.Participant, error) {
	if !timeframe.Valid() {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, domain.ErrMsgInvalidTimeframe, timeframe)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: non-positive limit %d", domain.ErrInvalidInput, limit)
	}

	key := cacheKey(timeframe, limit)
	if cached, found := s.cache.Get(key); found {
		return cached, nil
	}

	participants, err := s.repo.GetRankedParticipants(ctx, timeframe, limit)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, participants)
	logger.FromContext(ctx).Debug("Leaderboard cache refreshed", "timeframe", timeframe, "entries", len(participants))
	return participants, nil
}
