package services

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-portal/storage"
)

func TestStatsService_CacheMissCountsAndStores(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := storage.NewMemory()
	store.SetAlumniCount(1234)

	service := NewStatsService(store, store, db, time.Minute)

	mock.ExpectGet(alumniCountKey).RedisNil()
	mock.ExpectSet(alumniCountKey, "1234", time.Minute).SetVal("OK")

	stats, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1234), stats.TotalAlumni)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsService_CacheHitSkipsStore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := storage.NewMemory()
	// Deliberately different from the cached value to prove the store
	// was not consulted.
	store.SetAlumniCount(1)

	service := NewStatsService(store, store, db, time.Minute)

	mock.ExpectGet(alumniCountKey).SetVal("5000")

	stats, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5000), stats.TotalAlumni)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsService_NoCacheFallsThrough(t *testing.T) {
	store := storage.NewMemory()
	store.SetAlumniCount(42)

	service := NewStatsService(store, store, nil, time.Minute)

	stats, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalAlumni)
}

func TestStatsService_EventCounts(t *testing.T) {
	store := storage.NewMemory()
	events := NewEventService(store, store)
	ctx := context.Background()

	_, err := events.Create(ctx, CreateEventInput{Title: "Past", Date: "2020-01-01"})
	require.NoError(t, err)
	_, err = events.Create(ctx, CreateEventInput{Title: "Future", Date: "2100-01-01"})
	require.NoError(t, err)

	service := NewStatsService(store, store, nil, time.Minute)
	stats, err := service.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalEvents)
	assert.Equal(t, int64(1), stats.UpcomingEvents)
}
