package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"alumni-portal/internal/status"
	"alumni-portal/models"
	"alumni-portal/storage"
)

// dateOnly accepts the bare calendar form the create form submits.
const dateOnly = "2006-01-02"

// CreateEventInput is a validated-later creation request. Title and Date are
// required; everything else defaults.
type CreateEventInput struct {
	Title        string
	Description  string
	Date         string
	Time         string
	Location     string
	Type         string
	Attendees    int
	MaxAttendees int
	Organizer    string
	Image        string
	Price        float64
}

type EventService struct {
	store      storage.EventStore
	activities storage.ActivityStore
	now        func() time.Time
}

func NewEventService(store storage.EventStore, activities storage.ActivityStore) *EventService {
	return &EventService{
		store:      store,
		activities: activities,
		now:        time.Now,
	}
}

// List returns every event in the store's insertion order.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.store.ListEvents(ctx)
}

// Upcoming returns events dated strictly after now, earliest first.
func (s *EventService) Upcoming(ctx context.Context) ([]models.Event, error) {
	return s.store.ListUpcomingEvents(ctx, s.now())
}

// Create validates the input, persists the event and records a feed entry.
// Validation failures map to the sentinel errors in internal/status.
func (s *EventService) Create(ctx context.Context, in CreateEventInput) (*models.Event, error) {
	if in.Title == "" {
		return nil, status.ErrTitleRequired
	}
	if in.Date == "" {
		return nil, status.ErrDateRequired
	}
	date, err := parseEventDate(in.Date)
	if err != nil {
		return nil, status.ErrInvalidDate
	}
	if in.Type != "" && !models.EventType(in.Type).Valid() {
		return nil, status.ErrInvalidEventType
	}

	event := models.Event{
		Title:        in.Title,
		Description:  in.Description,
		Date:         date,
		Time:         in.Time,
		Location:     in.Location,
		Type:         models.EventType(in.Type),
		Attendees:    max(in.Attendees, 0),
		MaxAttendees: max(in.MaxAttendees, 0),
		Organizer:    in.Organizer,
		Image:        in.Image,
		Price:        max(in.Price, 0),
	}
	if err := s.store.InsertEvent(ctx, &event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	// Feed entry is best effort; the event itself is already durable.
	activity := models.Activity{
		Message:   fmt.Sprintf("New event created: %s", event.Title),
		Actor:     event.DisplayOrganizer(),
		Timestamp: s.now(),
	}
	if err := s.activities.InsertActivity(ctx, &activity); err != nil {
		slog.Error("failed to record event activity", "eventID", event.ID.Hex(), "error", err)
	}

	return &event, nil
}

func parseEventDate(value string) (time.Time, error) {
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date, nil
	}
	return time.Parse(dateOnly, value)
}
