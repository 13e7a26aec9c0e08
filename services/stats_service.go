package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"alumni-portal/models"
	"alumni-portal/storage"
)

const alumniCountKey = "stats:total_alumni"

// StatsService aggregates the dashboard numbers. The alumni count is the
// expensive one, so it goes through a short-lived Redis cache when a client
// is available; cache trouble falls through to the store.
type StatsService struct {
	alumni storage.AlumniStore
	events storage.EventStore
	cache  *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewStatsService(alumni storage.AlumniStore, events storage.EventStore, cache *redis.Client, ttl time.Duration) *StatsService {
	return &StatsService{
		alumni: alumni,
		events: events,
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *StatsService) Overview(ctx context.Context) (models.Stats, error) {
	totalAlumni, err := s.totalAlumni(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats: %w", err)
	}
	totalEvents, err := s.events.CountEvents(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats: %w", err)
	}
	upcoming, err := s.events.CountUpcomingEvents(ctx, s.now())
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats: %w", err)
	}

	return models.Stats{
		TotalAlumni:    totalAlumni,
		TotalEvents:    totalEvents,
		UpcomingEvents: upcoming,
	}, nil
}

func (s *StatsService) totalAlumni(ctx context.Context) (int64, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, alumniCountKey).Result()
		if err == nil {
			if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return count, nil
			}
		} else if err != redis.Nil {
			slog.Warn("stats cache read failed", "key", alumniCountKey, "error", err)
		}
	}

	count, err := s.alumni.CountAlumni(ctx)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, alumniCountKey, strconv.FormatInt(count, 10), s.ttl).Err(); err != nil {
			slog.Warn("stats cache write failed", "key", alumniCountKey, "error", err)
		}
	}
	return count, nil
}
