package pagerduty

import (
	"net/http"
	"time"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	subdomain      string
	username       string
	password       string
	serviceKey     string
	baseURL        string
	eventsEndpoint string
	eventsHTTP     bool
	httpClient     *http.Client
	timeout        time.Duration
	userAgent      string
	logger         RequestLogger
}

// WithSubdomain sets the PagerDuty account subdomain. The REST base URL
// becomes https://{subdomain}.pagerduty.com/api/v1.
func WithSubdomain(subdomain string) ClientOption {
	return func(c *clientConfig) {
		c.subdomain = subdomain
	}
}

// WithBasicAuth sets the credentials used for the schedules and
// incidents endpoints.
func WithBasicAuth(username, password string) ClientOption {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithServiceKey sets the integration key used for the events endpoint.
func WithServiceKey(key string) ClientOption {
	return func(c *clientConfig) {
		c.serviceKey = key
	}
}

// WithBaseURL overrides the subdomain-derived REST base URL. Mainly
// useful for tests and proxies.
func WithBaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithEventsEndpoint overrides the fixed events ingestion endpoint.
func WithEventsEndpoint(url string) ClientOption {
	return func(c *clientConfig) {
		c.eventsEndpoint = url
	}
}

// WithEventsHTTP posts events over plain http instead of https. It has
// no effect when WithEventsEndpoint is used.
func WithEventsHTTP() ClientOption {
	return func(c *clientConfig) {
		c.eventsHTTP = true
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the default request timeout.
// Note: This option is ignored when WithHTTPClient is used;
// set the timeout directly on the provided client instead.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithRequestLogger sets the logger that receives per-request
// diagnostics. The default discards everything.
func WithRequestLogger(logger RequestLogger) ClientOption {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// RequestOption configures individual API requests.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers http.Header
}

func newRequestConfig() *requestConfig {
	return &requestConfig{
		headers: make(http.Header),
	}
}

func (r *requestConfig) apply(opts ...RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// WithHeader adds a custom header to a request.
func WithHeader(key, value string) RequestOption {
	return func(r *requestConfig) {
		r.headers.Set(key, value)
	}
}

// WithHeaders adds multiple custom headers to a request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *requestConfig) {
		for k, v := range headers {
			r.headers.Set(k, v)
		}
	}
}

// EventOption sets an optional field on an event before it is posted.
type EventOption func(*eventPayload)

// WithIncidentKey sets the incident key on a triggered event, letting
// the server deduplicate repeat triggers into one open incident.
func WithIncidentKey(key string) EventOption {
	return func(e *eventPayload) {
		e.IncidentKey = key
	}
}

// WithEventDescription sets the description on an acknowledge or
// resolve event.
func WithEventDescription(description string) EventOption {
	return func(e *eventPayload) {
		e.Description = description
	}
}

// WithDetails attaches an arbitrary JSON object to the event.
func WithDetails(details map[string]any) EventOption {
	return func(e *eventPayload) {
		e.Details = details
	}
}
