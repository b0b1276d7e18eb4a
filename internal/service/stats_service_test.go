package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

func TestStatsService_DirectQueryWithoutCache(t *testing.T) {
	queries := 0
	tickets := &mockTicketRepository{
		StatsFunc: func(context.Context) (*domain.DashboardStats, error) {
			queries++
			return &domain.DashboardStats{TotalTickets: 3, OpenTickets: 2, InProgress: 1}, nil
		},
	}
	svc := NewStatsService(tickets, nil, 0, zap.NewNop())

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalTickets)

	_, err = svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, queries, "no cache configured, every call queries")
}

func TestStatsService_CacheHitSkipsQuery(t *testing.T) {
	queries := 0
	tickets := &mockTicketRepository{
		StatsFunc: func(context.Context) (*domain.DashboardStats, error) {
			queries++
			return &domain.DashboardStats{TotalTickets: 5, HighPriority: 1}, nil
		},
	}
	cache := newFakeStatsCache()
	svc := NewStatsService(tickets, cache, 30*time.Second, zap.NewNop())

	first, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	second, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, queries, "second call is served from cache")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}

func TestStatsService_InvalidateForcesRefresh(t *testing.T) {
	counts := []int64{1, 2}
	queries := 0
	tickets := &mockTicketRepository{
		StatsFunc: func(context.Context) (*domain.DashboardStats, error) {
			stats := &domain.DashboardStats{TotalTickets: counts[queries]}
			queries++
			return stats, nil
		},
	}
	cache := newFakeStatsCache()
	svc := NewStatsService(tickets, cache, 30*time.Second, zap.NewNop())

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalTickets)

	svc.Invalidate(context.Background())

	stats, err = svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalTickets)
	assert.Equal(t, 2, queries)
}

func TestStatsService_CorruptCacheEntryIsDropped(t *testing.T) {
	tickets := &mockTicketRepository{
		StatsFunc: func(context.Context) (*domain.DashboardStats, error) {
			return &domain.DashboardStats{TotalTickets: 9}, nil
		},
	}
	cache := newFakeStatsCache()
	cache.store["dashboard:stats"] = "{not json"
	svc := NewStatsService(tickets, cache, 30*time.Second, zap.NewNop())

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), stats.TotalTickets)
}
