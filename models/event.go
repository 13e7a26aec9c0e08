package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType is the closed classification set for events. Unknown values are
// tolerated everywhere and render with the generic label.
type EventType string

const (
	TypeReunion    EventType = "reunion"
	TypeNetworking EventType = "networking"
	TypeWorkshop   EventType = "workshop"
	TypeWebinar    EventType = "webinar"
	TypeCareer     EventType = "career"
	TypeSocial     EventType = "social"
)

var eventTypeLabels = map[EventType]string{
	TypeReunion:    "Reunion",
	TypeNetworking: "Networking",
	TypeWorkshop:   "Workshop",
	TypeWebinar:    "Webinar",
	TypeCareer:     "Career",
	TypeSocial:     "Social",
}

// EventTypes returns the valid types in display order.
func EventTypes() []EventType {
	return []EventType{TypeReunion, TypeNetworking, TypeWorkshop, TypeWebinar, TypeCareer, TypeSocial}
}

func (t EventType) Valid() bool {
	_, ok := eventTypeLabels[t]
	return ok
}

// Label returns the display name, falling back to "General" for
// unrecognized or absent types.
func (t EventType) Label() string {
	if label, ok := eventTypeLabels[t]; ok {
		return label
	}
	return "General"
}

const (
	// DefaultOrganizer is shown when an event has no organizer on record.
	DefaultOrganizer = "Alumni Office"

	// DefaultEventImage is the fallback banner for events without one.
	DefaultEventImage = "https://images.pexels.com/photos/2747449/pexels-photo-2747449.jpeg?w=800&h=400&fit=crop"
)

// Event is a schedulable alumni-network happening. Field names mirror the
// stored documents, which the web front-end consumes as-is.
type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Date         time.Time          `bson:"date" json:"date"`
	Time         string             `bson:"time,omitempty" json:"time,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Type         EventType          `bson:"type,omitempty" json:"type,omitempty"`
	Attendees    int                `bson:"attendees" json:"attendees"`
	MaxAttendees int                `bson:"maxAttendees,omitempty" json:"maxAttendees,omitempty"`
	Organizer    string             `bson:"organizer,omitempty" json:"organizer,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	IsRegistered bool               `bson:"isRegistered" json:"isRegistered"`
	Price        float64            `bson:"price" json:"price"`
}

// DisplayOrganizer applies the placeholder for events without an organizer.
func (e Event) DisplayOrganizer() string {
	if e.Organizer == "" {
		return DefaultOrganizer
	}
	return e.Organizer
}

// DisplayImage applies the placeholder banner when none is set.
func (e Event) DisplayImage() string {
	if e.Image == "" {
		return DefaultEventImage
	}
	return e.Image
}

// PriceLabel renders zero as "Free" and anything else as a dollar amount.
func (e Event) PriceLabel() string {
	if e.Price == 0 {
		return "Free"
	}
	return "$" + strconv.FormatFloat(e.Price, 'f', -1, 64)
}
