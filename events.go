package pagerduty

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// EventService posts events to the PagerDuty generic events endpoint.
// Events authenticate with the integration service key carried in the
// body, not with basic auth.
type EventService interface {
	// Trigger opens a new incident (or feeds an existing one when
	// WithIncidentKey is supplied) and returns the server-assigned
	// incident key.
	Trigger(ctx context.Context, description string, opts ...EventOption) (string, error)

	// Acknowledge marks the incident with the given key as being
	// worked on.
	Acknowledge(ctx context.Context, incidentKey string, opts ...EventOption) (string, error)

	// Resolve closes the incident with the given key.
	Resolve(ctx context.Context, incidentKey string, opts ...EventOption) (string, error)
}

// eventService implements EventService.
type eventService struct {
	serviceKey string
	endpoint   string
	httpClient *http.Client
	userAgent  string
	logger     RequestLogger
}

func newEventService(serviceKey, endpoint string, httpClient *http.Client, userAgent string, logger RequestLogger) *eventService {
	return &eventService{
		serviceKey: serviceKey,
		endpoint:   endpoint,
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Trigger opens a new incident described by description. The
// description is passed through as-is; the endpoint decides whether it
// is acceptable.
func (s *eventService) Trigger(ctx context.Context, description string, opts ...EventOption) (string, error) {
	return s.send(ctx, "trigger", &eventPayload{Description: description}, opts)
}

// Acknowledge marks the incident with the given key as being worked on.
func (s *eventService) Acknowledge(ctx context.Context, incidentKey string, opts ...EventOption) (string, error) {
	if incidentKey == "" {
		return "", &ValidationError{
			APIError: APIError{Message: "incident key cannot be empty"},
		}
	}
	return s.send(ctx, "acknowledge", &eventPayload{IncidentKey: incidentKey}, opts)
}

// Resolve closes the incident with the given key.
func (s *eventService) Resolve(ctx context.Context, incidentKey string, opts ...EventOption) (string, error) {
	if incidentKey == "" {
		return "", &ValidationError{
			APIError: APIError{Message: "incident key cannot be empty"},
		}
	}
	return s.send(ctx, "resolve", &eventPayload{IncidentKey: incidentKey}, opts)
}

// send posts one event and interprets the result. All three event
// types share this path.
func (s *eventService) send(ctx context.Context, eventType string, event *eventPayload, opts []EventOption) (string, error) {
	if s.serviceKey == "" {
		return "", ErrNoServiceKey
	}

	for _, opt := range opts {
		opt(event)
	}
	event.ServiceKey = s.serviceKey
	event.EventType = eventType

	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshaling event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	s.logger.Debugf("pagerduty: POST %s event_type=%s", s.endpoint, eventType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Errorf("pagerduty: POST %s failed: %v", s.endpoint, err)
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	// HTTP 400 is data here: the endpoint encodes application-level
	// failures as 400 with a structured body. Anything else outside
	// 2xx is a transport failure.
	if (resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices) &&
		resp.StatusCode != http.StatusBadRequest {
		return "", parseError(resp.StatusCode, body, resp.Header)
	}

	var result eventResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if result.Status != "success" {
		return "", &EventError{
			Status:  result.Status,
			Message: result.Message,
			Errors:  result.Errors,
		}
	}

	return result.IncidentKey, nil
}
