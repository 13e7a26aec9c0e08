package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_GetEventsDecodesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title":"Homecoming","location":"Main Hall"}]`))
	}))
	defer srv.Close()

	events, err := New(srv.URL).GetEvents(t.Context(), false)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Homecoming", events[0].Title)
}

func TestAPI_GetEventsUpcomingQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("upcoming"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetEvents(t.Context(), true)
	require.NoError(t, err)
}

func TestAPI_HTMLResponseIsInvalid(t *testing.T) {
	// A misconfigured or unreachable backend answering with an error page
	// must produce a clean error, not a decode panic.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>It works!</body></html>`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetEvents(t.Context(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAPI_ServerMessageSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"event: title is required"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateEvent(t.Context(), CreateEventRequest{Title: "x", Date: "2025-12-01"})
	require.Error(t, err)
	assert.Equal(t, "event: title is required", err.Error())
}

func TestAPI_ErrorWithoutMessageGetsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetEvents(t.Context(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAPI_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	_, err := New(srv.URL).GetEvents(t.Context(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAPI_GetStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalAlumni":1500,"totalEvents":12,"upcomingEvents":4}`))
	}))
	defer srv.Close()

	stats, err := New(srv.URL).GetStats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1500), stats.TotalAlumni)
}
