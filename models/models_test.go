package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventType_Labels(t *testing.T) {
	assert.Equal(t, "Reunion", TypeReunion.Label())
	assert.Equal(t, "Networking", TypeNetworking.Label())

	// Unknown and absent types must not break rendering.
	assert.Equal(t, "General", EventType("hackathon").Label())
	assert.Equal(t, "General", EventType("").Label())

	assert.True(t, TypeWebinar.Valid())
	assert.False(t, EventType("hackathon").Valid())
}

func TestEvent_WireFieldNames(t *testing.T) {
	event := Event{
		ID:           primitive.NewObjectID(),
		Title:        "Annual Alumni Gala",
		Date:         time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC),
		Type:         TypeReunion,
		Attendees:    120,
		IsRegistered: true,
		Price:        25,
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))

	// The front-end reads these exact keys.
	assert.Equal(t, event.ID.Hex(), wire["_id"])
	assert.Equal(t, "Annual Alumni Gala", wire["title"])
	assert.Equal(t, "reunion", wire["type"])
	assert.Equal(t, float64(120), wire["attendees"])
	assert.Equal(t, true, wire["isRegistered"])
	assert.Equal(t, float64(25), wire["price"])
	assert.NotContains(t, wire, "description")
}

func TestEvent_DisplayDefaults(t *testing.T) {
	var event Event

	assert.Equal(t, DefaultOrganizer, event.DisplayOrganizer())
	assert.Equal(t, DefaultEventImage, event.DisplayImage())
	assert.Equal(t, "Free", event.PriceLabel())

	event.Organizer = "CS Department"
	event.Image = "https://example.com/banner.jpg"
	event.Price = 12.5

	assert.Equal(t, "CS Department", event.DisplayOrganizer())
	assert.Equal(t, "https://example.com/banner.jpg", event.DisplayImage())
	assert.Equal(t, "$12.5", event.PriceLabel())
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := User{
		Email:        "john.smith@email.com",
		Name:         "John Smith",
		Role:         RoleAlumni,
		PasswordHash: "$2a$10$secret",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
}

func TestRole_Valid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleAlumni, RoleStudent, RoleRecruiter} {
		assert.True(t, role.Valid())
	}
	assert.False(t, Role("superuser").Valid())
}
