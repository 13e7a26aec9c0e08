package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"alumni-portal/internal/status"
	"alumni-portal/models"
)

// Memory is an in-memory implementation of every store interface, used by
// tests and local development without a database.
type Memory struct {
	mu          sync.RWMutex
	events      []models.Event
	activities  []models.Activity
	alumniCount int64
	users       map[string]models.User
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]models.User)}
}

// SetAlumniCount seeds the alumni collection size.
func (m *Memory) SetAlumniCount(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alumniCount = n
}

func (m *Memory) ListEvents(_ context.Context) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Event, len(m.events))
	copy(out, m.events)
	return out, nil
}

func (m *Memory) ListUpcomingEvents(_ context.Context, now time.Time) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Event
	for _, e := range m.events {
		if e.Date.After(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *Memory) InsertEvent(_ context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	m.events = append(m.events, *event)
	return nil
}

func (m *Memory) CountEvents(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.events)), nil
}

func (m *Memory) CountUpcomingEvents(_ context.Context, now time.Time) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, e := range m.events {
		if e.Date.After(now) {
			count++
		}
	}
	return count, nil
}

func (m *Memory) RecentActivities(_ context.Context, limit int64) ([]models.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Activity, len(m.activities))
	copy(out, m.activities)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) InsertActivity(_ context.Context, activity *models.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if activity.ID.IsZero() {
		activity.ID = primitive.NewObjectID()
	}
	m.activities = append(m.activities, *activity)
	return nil
}

func (m *Memory) CountAlumni(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.alumniCount, nil
}

func (m *Memory) InsertUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Email]; exists {
		return status.ErrEmailTaken
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.users[user.Email] = *user
	return nil
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[email]
	if !ok {
		return nil, status.ErrNotFound
	}
	return &user, nil
}
