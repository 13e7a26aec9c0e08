// Package client is the Go front-end for the portal API: a typed HTTP
// client plus the view controllers for the events listing and creation
// screens.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"alumni-portal/models"
)

// DefaultBaseURL matches the default server port.
const DefaultBaseURL = "http://localhost:5000"

// ErrInvalidResponse covers unreachable backends and misconfigured ones that
// answer with an HTML error page instead of JSON.
var ErrInvalidResponse = errors.New("failed to get a valid response from the server")

type API struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *API {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// GetEvents fetches the full listing, or only future events when upcoming
// is set.
func (a *API) GetEvents(ctx context.Context, upcoming bool) ([]models.Event, error) {
	url := a.baseURL + "/api/events"
	if upcoming {
		url += "?upcoming=true"
	}
	var events []models.Event
	if err := a.getJSON(ctx, url, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEventRequest is the creation payload. Attendees rides along only
// when set; the server defaults it to zero.
type CreateEventRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Date         string  `json:"date"`
	Time         string  `json:"time,omitempty"`
	Location     string  `json:"location,omitempty"`
	Type         string  `json:"type,omitempty"`
	Attendees    int     `json:"attendees"`
	MaxAttendees int     `json:"maxAttendees,omitempty"`
	Organizer    string  `json:"organizer,omitempty"`
	Image        string  `json:"image,omitempty"`
	Price        float64 `json:"price,omitempty"`
}

func (a *API) CreateEvent(ctx context.Context, in CreateEventRequest) (*models.Event, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/events", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	var created models.Event
	if err := decodeResponse(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *API) GetStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := a.getJSON(ctx, a.baseURL+"/api/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *API) GetActivities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := a.getJSON(ctx, a.baseURL+"/api/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// LoginResult pairs the authenticated user with its opaque session token.
type LoginResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (a *API) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	var result LoginResult
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *API) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := a.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// decodeResponse enforces the response contract: the body is only decoded
// when the server actually sent JSON, so an HTML error page from a proxy or
// a down backend surfaces as ErrInvalidResponse instead of a decode failure.
// Error statuses with a JSON body surface their message verbatim.
func decodeResponse(resp *http.Response, out any) error {
	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode >= 400 {
		if isJSON {
			var apiErr struct {
				Message string `json:"message"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
				return errors.New(apiErr.Message)
			}
		}
		return fmt.Errorf("%w (status %d)", ErrInvalidResponse, resp.StatusCode)
	}
	if !isJSON {
		return fmt.Errorf("%w: unexpected content type %q", ErrInvalidResponse, resp.Header.Get("Content-Type"))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
