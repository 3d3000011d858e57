package pagerduty

import (
	"context"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tphakala/go-pagerduty/internal/api"
)

// incidentsPageSize is the fixed page size used by All.
const incidentsPageSize = 100

// IncidentService provides operations on incident listings.
type IncidentService interface {
	// All returns an iterator over every incident in the given range.
	// Pages are fetched lazily as you iterate; no request happens
	// before the first advance, and stopping early abandons the
	// remaining pages.
	All(ctx context.Context, since, until string, reqOpts ...RequestOption) iter.Seq2[Incident, error]

	// Page returns a single page of incidents.
	// Use this for manual pagination control.
	Page(ctx context.Context, since, until string, page *PageOptions, reqOpts ...RequestOption) (*IncidentPage, error)
}

// incidentService implements IncidentService.
type incidentService struct {
	transport *api.Transport
}

func newIncidentService(transport *api.Transport) *incidentService {
	return &incidentService{transport: transport}
}

// All returns an iterator over every incident in the given range.
//
// The first page is fetched at offset 0 and carries the total count;
// further pages are fetched at offsets 100, 200, ... in ascending
// order. Incidents are yielded in server order within each page, with
// no cross-page reordering or deduplication. A failed page yields its
// error and ends the iteration; incidents yielded before the failure
// remain valid.
func (s *incidentService) All(ctx context.Context, since, until string, reqOpts ...RequestOption) iter.Seq2[Incident, error] {
	return func(yield func(Incident, error) bool) {
		first, err := s.Page(ctx, since, until, &PageOptions{
			Offset: 0,
			Limit:  incidentsPageSize,
		}, reqOpts...)

		if err != nil {
			yield(nil, err)
			return
		}

		if !s.yieldPageItems(ctx, first, yield) {
			return
		}

		if first.Total <= incidentsPageSize {
			return
		}

		numPages := (first.Total + incidentsPageSize - 1) / incidentsPageSize
		for page := 1; page < numPages; page++ {
			p, err := s.Page(ctx, since, until, &PageOptions{
				Offset: page * incidentsPageSize,
				Limit:  incidentsPageSize,
			}, reqOpts...)

			if err != nil {
				yield(nil, err)
				return
			}

			if !s.yieldPageItems(ctx, p, yield) {
				return
			}
		}
	}
}

// yieldPageItems yields each incident from the page to the iterator.
// Returns false if iteration should stop (context cancelled or yield returned false).
func (s *incidentService) yieldPageItems(ctx context.Context, page *IncidentPage, yield func(Incident, error) bool) bool {
	for _, incident := range page.Incidents {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return false
		}
		if !yield(incident, nil) {
			return false
		}
	}
	return true
}

// Page returns a single page of incidents.
func (s *incidentService) Page(ctx context.Context, since, until string, page *PageOptions, reqOpts ...RequestOption) (*IncidentPage, error) {
	if s.transport == nil {
		return nil, ErrNoCredentials
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(reqOpts...)

	// Copy before defaulting so the caller's options are not mutated.
	var opts PageOptions
	if page != nil {
		opts = *page
	}
	if opts.Limit <= 0 {
		opts.Limit = incidentsPageSize
	}

	query := url.Values{}
	query.Set("since", since)
	query.Set("until", until)
	query.Set("limit", strconv.Itoa(opts.Limit))
	query.Set("offset", strconv.Itoa(opts.Offset))

	var result incidentsResponse
	resp, err := s.transport.DoJSON(ctx, &api.Request{
		Method:  http.MethodGet,
		Path:    "/incidents",
		Query:   query,
		Headers: reqCfg.headers,
	}, &result)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest || hasErrorEnvelope(resp.Body) {
		return nil, parseError(resp.StatusCode, resp.Body, resp.Headers)
	}

	return &IncidentPage{
		Incidents: result.Incidents,
		Total:     result.Total,
		Offset:    opts.Offset,
		Limit:     opts.Limit,
	}, nil
}
