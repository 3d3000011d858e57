// Package auth provides HTTP basic authentication for the PagerDuty REST API.
package auth

import "net/http"

// Credentials holds the account username and password used for the
// schedules and incidents endpoints.
type Credentials struct {
	Username string
	Password string
}

// Apply adds the basic-auth header to an HTTP request.
func (c *Credentials) Apply(req *http.Request) {
	if c == nil {
		return
	}
	req.SetBasicAuth(c.Username, c.Password)
}

// Valid reports whether credentials are configured.
func (c *Credentials) Valid() bool {
	return c != nil && c.Username != "" && c.Password != ""
}
