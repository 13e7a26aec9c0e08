package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of account roles. Each role maps to its own
// dashboard view.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAlumni    Role = "alumni"
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

var roles = map[Role]struct{}{
	RoleAdmin:     {},
	RoleAlumni:    {},
	RoleStudent:   {},
	RoleRecruiter: {},
}

func (r Role) Valid() bool {
	_, ok := roles[r]
	return ok
}

// Profile holds the optional alumni-directory details of an account.
type Profile struct {
	Batch        string   `bson:"batch,omitempty" json:"batch,omitempty"`
	Degree       string   `bson:"degree,omitempty" json:"degree,omitempty"`
	Company      string   `bson:"company,omitempty" json:"company,omitempty"`
	Position     string   `bson:"position,omitempty" json:"position,omitempty"`
	Location     string   `bson:"location,omitempty" json:"location,omitempty"`
	Phone        string   `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedIn     string   `bson:"linkedIn,omitempty" json:"linkedIn,omitempty"`
	Bio          string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills       []string `bson:"skills,omitempty" json:"skills,omitempty"`
	Achievements []string `bson:"achievements,omitempty" json:"achievements,omitempty"`
}

// User is a portal account. The password hash never leaves the server.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	Role         Role               `bson:"role" json:"role"`
	Avatar       string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Profile      *Profile           `bson:"profile,omitempty" json:"profile,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
