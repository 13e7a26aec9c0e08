package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a feed entry shown on the dashboards.
type Activity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Message   string             `bson:"message" json:"message"`
	Actor     string             `bson:"actor,omitempty" json:"actor,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Stats is the dashboard aggregate payload.
type Stats struct {
	TotalAlumni    int64 `json:"totalAlumni"`
	TotalEvents    int64 `json:"totalEvents"`
	UpcomingEvents int64 `json:"upcomingEvents"`
}
