// Package pagerduty provides a native Go client for the PagerDuty v1
// REST API (schedules and incidents) and the generic events endpoint
// (trigger, acknowledge, resolve).
//
// # Features
//
//   - Service-based architecture for expandability
//   - Modern Go 1.25+ iterators for incident pagination
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//   - No runtime dependencies (test dependencies only)
//
// # Quick Start
//
//	client, err := pagerduty.NewClient(
//	    pagerduty.WithSubdomain("acme"),
//	    pagerduty.WithBasicAuth("user", "password"),
//	    pagerduty.WithServiceKey("integration-key"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List every incident in a range
//	for incident, err := range client.Incidents.All(ctx, "2011-05-01", "2011-05-15") {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(incident["incident_number"])
//	}
//
//	// Trigger an event
//	key, err := client.Events.Trigger(ctx, "disk full on web-1")
//
// # Credentials
//
// The schedules and incidents services authenticate with HTTP basic
// auth against https://{subdomain}.pagerduty.com/api/v1 and require
// [WithSubdomain] and [WithBasicAuth]. The events service authenticates
// with the integration key set by [WithServiceKey], carried in the
// request body. A client may be constructed with either credential set
// or both; a service called without its own credentials returns
// [ErrNoCredentials] or [ErrNoServiceKey].
//
// # Error Handling
//
// REST failures surface as typed errors that can be inspected with
// errors.As. The raw HTTP status is always preserved; when the response
// carries PagerDuty's structured error envelope, its code, message and
// sub-errors replace the HTTP-level defaults:
//
//	entries, err := client.Schedules.Entries(ctx, "PABC123", opts)
//	if err != nil {
//	    var apiErr *pagerduty.APIError
//	    if errors.As(err, &apiErr) {
//	        log.Printf("code=%d message=%s", apiErr.StatusCode, apiErr.Message)
//	    }
//	}
//
// Event posts that the endpoint accepts but rejects at the application
// level (including HTTP 400 responses, which carry a structured body)
// return [EventError] with the reported status, message and sub-errors.
//
// # Pagination
//
// Incident listings use iterators for automatic pagination. Pages of
// 100 are fetched on demand, so stopping early avoids fetching the
// remaining pages:
//
//	for incident, err := range client.Incidents.All(ctx, since, until) {
//	    // ...
//	}
//
//	// Collect all results into a slice
//	incidents, err := pagerduty.Collect(client.Incidents.All(ctx, since, until))
//
//	// Or use manual pagination
//	page, err := client.Incidents.Page(ctx, since, until, &pagerduty.PageOptions{
//	    Offset: 0,
//	    Limit:  100,
//	})
package pagerduty
