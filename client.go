package pagerduty

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tphakala/go-pagerduty/internal/api"
	"github.com/tphakala/go-pagerduty/internal/auth"
)

// Default configuration values.
const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "go-pagerduty/1.0"

	// The generic events endpoint is fixed; only its scheme is
	// configurable.
	eventsHost = "events.pagerduty.com/generic/2010-04-15/create_event.json"
)

// Client is the PagerDuty API client.
type Client struct {
	// Schedules provides access to on-call schedule entries.
	Schedules ScheduleService

	// Incidents provides access to incident listings.
	Incidents IncidentService

	// Events posts trigger/acknowledge/resolve events.
	Events EventService

	transport *api.Transport
}

// NewClient creates a new PagerDuty client with the given options.
//
// The schedules and incidents services require WithSubdomain and
// WithBasicAuth; the events service requires WithServiceKey. A client
// may carry either credential set or both, and each service reports a
// sentinel error when called without its own.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		timeout: defaultTimeout,
		logger:  &NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	creds := &auth.Credentials{
		Username: cfg.username,
		Password: cfg.password,
	}

	if cfg.serviceKey == "" && !creds.Valid() {
		return nil, ErrNoCredentials
	}

	if creds.Valid() && cfg.subdomain == "" && cfg.baseURL == "" {
		return nil, ErrNoSubdomain
	}

	userAgent := cfg.userAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	var transport *api.Transport
	if creds.Valid() {
		baseURL := cfg.baseURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("https://%s.pagerduty.com/api/v1", cfg.subdomain)
		}

		var err error
		transport, err = api.NewTransport(baseURL, creds, httpClient)
		if err != nil {
			return nil, err
		}
		transport.UserAgent = userAgent
		transport.Logger = cfg.logger
	}

	eventsEndpoint := cfg.eventsEndpoint
	if eventsEndpoint == "" {
		scheme := "https"
		if cfg.eventsHTTP {
			scheme = "http"
		}
		eventsEndpoint = scheme + "://" + eventsHost
	}

	client := &Client{
		transport: transport,
	}

	// Initialize services
	client.Schedules = newScheduleService(transport)
	client.Incidents = newIncidentService(transport)
	client.Events = newEventService(cfg.serviceKey, eventsEndpoint, httpClient, userAgent, cfg.logger)

	return client, nil
}

// BaseURL returns the configured REST API base URL, or "" when the
// client carries only events credentials.
func (c *Client) BaseURL() string {
	if c.transport == nil {
		return ""
	}
	return c.transport.BaseURL.String()
}
