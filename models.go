package pagerduty

// ScheduleEntry is an on-call assignment record as returned by the
// schedules endpoint. Entries are kept as opaque JSON objects; the
// library does not model their internal shape.
type ScheduleEntry map[string]any

// Incident is an alerting event tracked by PagerDuty, identified by an
// incident key. Incidents are kept as opaque JSON objects; the library
// does not model their internal shape.
type Incident map[string]any

// EntriesOptions configures a schedule entries query.
type EntriesOptions struct {
	// Since is the start of the range, an ISO 8601 date or date-time
	// string (a bare date is understood as midnight). Passed through to
	// the server without local validation.
	Since string

	// Until is the end of the range, in the same format as Since. The
	// server rejects ranges longer than three months.
	Until string

	// Overflow requests schedule entries the way they were entered
	// rather than clipped to the [Since, Until) window.
	Overflow bool
}

// PageOptions configures pagination for incident listing requests.
type PageOptions struct {
	Offset int
	Limit  int
}

// IncidentPage represents one page of incident results.
type IncidentPage struct {
	Incidents []Incident
	Total     int
	Offset    int
	Limit     int
}

// HasMore returns true if there are more pages available.
func (p *IncidentPage) HasMore() bool {
	return p.Offset+len(p.Incidents) < p.Total
}

// NextOffset returns the offset for the next page.
func (p *IncidentPage) NextOffset() int {
	return p.Offset + len(p.Incidents)
}

// entriesResponse is the wire shape of the schedule entries endpoint.
type entriesResponse struct {
	Entries []ScheduleEntry `json:"entries"`
}

// incidentsResponse is the wire shape of the incidents listing endpoint.
type incidentsResponse struct {
	Total     int        `json:"total"`
	Incidents []Incident `json:"incidents"`
}

// eventPayload is the JSON body posted to the events endpoint. Unset
// optional fields are omitted entirely, never sent as null.
type eventPayload struct {
	ServiceKey  string         `json:"service_key"`
	EventType   string         `json:"event_type"`
	Description string         `json:"description,omitempty"`
	IncidentKey string         `json:"incident_key,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
}

// eventResponse is the JSON body the events endpoint returns, for both
// success and application-level failure (the latter arrives with HTTP
// 400 and status != "success").
type eventResponse struct {
	Status      string   `json:"status"`
	Message     string   `json:"message"`
	Errors      []string `json:"errors"`
	IncidentKey string   `json:"incident_key"`
	Warnings    []string `json:"warnings"`
}
