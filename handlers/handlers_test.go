package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-portal/models"
	"alumni-portal/services"
	"alumni-portal/storage"
)

var errStoreDown = errors.New("storage unavailable")

// failingEventStore simulates a storage-layer fault on every call.
type failingEventStore struct{}

func (failingEventStore) ListEvents(context.Context) ([]models.Event, error) {
	return nil, errStoreDown
}

func (failingEventStore) ListUpcomingEvents(context.Context, time.Time) ([]models.Event, error) {
	return nil, errStoreDown
}

func (failingEventStore) InsertEvent(context.Context, *models.Event) error {
	return errStoreDown
}

func (failingEventStore) CountEvents(context.Context) (int64, error) {
	return 0, errStoreDown
}

func (failingEventStore) CountUpcomingEvents(context.Context, time.Time) (int64, error) {
	return 0, errStoreDown
}

func TestEventHandler_ListStorageFault(t *testing.T) {
	store := storage.NewMemory()
	handler := NewEventHandler(services.NewEventService(failingEventStore{}, store))

	rec := doJSON(t, handler.List, http.MethodGet, "/api/events", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "Error fetching events", errBody["message"])
}

func TestActivityHandler_Recent(t *testing.T) {
	store := storage.NewMemory()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, store.InsertActivity(t.Context(), &models.Activity{
			Message:   "entry",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	handler := NewActivityHandler(services.NewActivityService(store))
	rec := doJSON(t, handler.Recent, http.MethodGet, "/api/activities", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var activities []models.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	assert.Len(t, activities, 5)
}

func TestStatsHandler_Overview(t *testing.T) {
	store := storage.NewMemory()
	store.SetAlumniCount(87)

	handler := NewStatsHandler(services.NewStatsService(store, store, nil, time.Minute))
	rec := doJSON(t, handler.Overview, http.MethodGet, "/api/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(87), stats.TotalAlumni)
}

func TestAuthHandler_RegisterAndLogin(t *testing.T) {
	store := storage.NewMemory()
	handler := NewAuthHandler(services.NewAuthService(store))

	rec := doJSON(t, handler.Register, http.MethodPost, "/api/auth/register",
		`{"email":"john.smith@email.com","name":"John Smith","password":"alumni123","role":"alumni"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	// The password hash must never appear on the wire.
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = doJSON(t, handler.Login, http.MethodPost, "/api/auth/login",
		`{"email":"john.smith@email.com","password":"alumni123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "John Smith", resp.User.Name)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_LoginRejectsBadPassword(t *testing.T) {
	store := storage.NewMemory()
	handler := NewAuthHandler(services.NewAuthService(store))

	doJSON(t, handler.Register, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.c","name":"A","password":"right"}`)

	rec := doJSON(t, handler.Login, http.MethodPost, "/api/auth/login",
		`{"email":"a@b.c","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_DuplicateEmailConflict(t *testing.T) {
	store := storage.NewMemory()
	handler := NewAuthHandler(services.NewAuthService(store))

	doJSON(t, handler.Register, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.c","name":"A","password":"x"}`)

	rec := doJSON(t, handler.Register, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.c","name":"B","password":"y"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
