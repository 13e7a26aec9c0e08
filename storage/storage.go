// Package storage owns the document collections behind the portal. Every
// store is an interface so services and handlers can be tested against the
// in-memory implementations.
package storage

import (
	"context"
	"time"

	"alumni-portal/models"
)

type EventStore interface {
	// ListEvents returns every event in stable insertion order.
	ListEvents(ctx context.Context) ([]models.Event, error)
	// ListUpcomingEvents returns events with date strictly after now,
	// sorted by date ascending.
	ListUpcomingEvents(ctx context.Context, now time.Time) ([]models.Event, error)
	// InsertEvent persists the event and assigns its identifier.
	InsertEvent(ctx context.Context, event *models.Event) error
	CountEvents(ctx context.Context) (int64, error)
	CountUpcomingEvents(ctx context.Context, now time.Time) (int64, error)
}

type ActivityStore interface {
	// RecentActivities returns at most limit entries, newest first.
	RecentActivities(ctx context.Context, limit int64) ([]models.Activity, error)
	InsertActivity(ctx context.Context, activity *models.Activity) error
}

type AlumniStore interface {
	CountAlumni(ctx context.Context) (int64, error)
}

type UserStore interface {
	// InsertUser persists the user; status.ErrEmailTaken when the email
	// is already registered.
	InsertUser(ctx context.Context, user *models.User) error
	// FindUserByEmail returns status.ErrNotFound for unknown emails.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}
