package client

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"alumni-portal/models"
)

var (
	// ErrBusy signals a submit attempted while a prior one is in flight;
	// the attempt is a no-op.
	ErrBusy = errors.New("a submission is already in progress")

	// ErrDraftIncomplete blocks submission before any network call.
	ErrDraftIncomplete = errors.New("please fill out both the title and date fields")
)

// CreateEventForm holds the creation screen's draft. Attendees stays a raw
// text field, like the input box it mirrors; anything unparsable becomes 0.
type CreateEventForm struct {
	api *API

	mu        sync.Mutex
	busy      bool
	title     string
	date      string
	attendees string
	errMsg    string
}

func NewCreateEventForm(api *API) *CreateEventForm {
	return &CreateEventForm{api: api}
}

func (f *CreateEventForm) SetTitle(title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.title = title
}

func (f *CreateEventForm) SetDate(date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.date = date
}

func (f *CreateEventForm) SetAttendees(attendees string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attendees = attendees
}

func (f *CreateEventForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

func (f *CreateEventForm) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Submit validates the draft and posts it. While a submission is in flight
// further calls return ErrBusy without touching the network; the flag is
// released on every exit path. On success the draft resets and the created
// event is returned so the caller can leave the form for the listing.
func (f *CreateEventForm) Submit(ctx context.Context) (*models.Event, error) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	if f.title == "" || f.date == "" {
		f.errMsg = ErrDraftIncomplete.Error()
		f.mu.Unlock()
		return nil, ErrDraftIncomplete
	}
	f.busy = true
	f.errMsg = ""
	req := CreateEventRequest{
		Title:     f.title,
		Date:      f.date,
		Attendees: parseAttendees(f.attendees),
	}
	f.mu.Unlock()

	event, err := f.api.CreateEvent(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	if err != nil {
		f.errMsg = err.Error()
		if f.errMsg == "" {
			f.errMsg = "An unexpected error occurred."
		}
		return nil, err
	}

	f.title = ""
	f.date = ""
	f.attendees = ""
	return event, nil
}

func parseAttendees(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
