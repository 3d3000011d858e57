package pagerduty

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tphakala/go-pagerduty/internal/api"
)

// ScheduleService provides operations on on-call schedules.
type ScheduleService interface {
	// Entries returns the on-call schedule entries within the range
	// given in opts. The server rejects ranges longer than three
	// months; since/until are passed through without local validation.
	Entries(ctx context.Context, scheduleID string, opts *EntriesOptions, reqOpts ...RequestOption) ([]ScheduleEntry, error)
}

// scheduleService implements ScheduleService.
type scheduleService struct {
	transport *api.Transport
}

func newScheduleService(transport *api.Transport) *scheduleService {
	return &scheduleService{transport: transport}
}

// Entries returns the on-call schedule entries within the given range.
func (s *scheduleService) Entries(ctx context.Context, scheduleID string, opts *EntriesOptions, reqOpts ...RequestOption) ([]ScheduleEntry, error) {
	if s.transport == nil {
		return nil, ErrNoCredentials
	}
	if scheduleID == "" {
		return nil, &ValidationError{
			APIError: APIError{Message: "schedule ID cannot be empty"},
		}
	}
	if opts == nil {
		opts = &EntriesOptions{}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(reqOpts...)

	query := url.Values{}
	query.Set("since", opts.Since)
	query.Set("until", opts.Until)
	if opts.Overflow {
		query.Set("overflow", "true")
	}

	var result entriesResponse
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("/schedules/%s/entries", url.PathEscape(scheduleID)),
		Query:   query,
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest || hasErrorEnvelope(resp.Body) {
		return nil, parseError(resp.StatusCode, resp.Body, resp.Headers)
	}

	return result.Entries, nil
}
