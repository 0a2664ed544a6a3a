// Package api defines the request and response messages of the tip pool
// Connect services. Messages travel as JSON with snake_case field names.
package api
