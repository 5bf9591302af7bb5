// Package common contains constants and sentinel errors shared by the
// recordsync client and the development backend.
package common

// RequestIDHeader is the HTTP header carrying the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Backend routes.
const (
	RecordsPath   = "/api/data"
	AddRecordPath = "/api/add-data"
)
