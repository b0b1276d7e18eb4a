package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/repository"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util"
)

const statsCacheKey = "dashboard:stats"

// StatsCache is the narrow cache surface the stats service needs. The Redis
// wrapper satisfies it; tests substitute a map-backed fake.
type StatsCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Del(ctx context.Context, key string)
}

// StatsService serves dashboard aggregates, fronted by a short-lived cache.
// Cache failures degrade to direct queries and never fail the request.
type StatsService struct {
	tickets repository.TicketRepository
	cache   StatsCache
	ttl     time.Duration
	logger  *zap.Logger
}

// NewStatsService builds the service. A nil cache or zero TTL disables
// caching entirely.
func NewStatsService(tickets repository.TicketRepository, cache StatsCache, ttl time.Duration, logger *zap.Logger) *StatsService {
	return &StatsService{tickets: tickets, cache: cache, ttl: ttl, logger: logger}
}

// DashboardStats returns the ticket counters, from cache when fresh.
func (s *StatsService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cacheEnabled() {
		if raw, ok := s.cache.Get(ctx, statsCacheKey); ok {
			var stats domain.DashboardStats
			if err := json.Unmarshal([]byte(raw), &stats); err == nil {
				return &stats, nil
			}
			s.cache.Del(ctx, statsCacheKey)
		}
	}

	stats, err := s.tickets.Stats(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.cacheEnabled() {
		if raw, err := json.Marshal(stats); err == nil {
			s.cache.Set(ctx, statsCacheKey, string(raw), s.ttl)
		}
	}
	return stats, nil
}

// Invalidate drops the cached counters; called whenever a ticket mutates.
func (s *StatsService) Invalidate(ctx context.Context) {
	if s.cacheEnabled() {
		s.cache.Del(ctx, statsCacheKey)
	}
}

func (s *StatsService) cacheEnabled() bool {
	return s.cache != nil && s.ttl > 0
}
