package status

import "errors"

var (
	ErrTitleRequired    = errors.New("event: title is required")
	ErrDateRequired     = errors.New("event: date is required")
	ErrInvalidDate      = errors.New("event: invalid date format")
	ErrInvalidEventType = errors.New("event: unknown event type")

	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrMissingFields      = errors.New("auth: name, email and password are required")

	ErrNotFound = errors.New("record not found")
)
