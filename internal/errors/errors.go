// Package errors provides RFC 7807 problem-details responses for the HTTP
// surface.
package errors

import (
	"net/http"

	"github.com/go-chi/render"
)

// Problem type URIs following RFC 7807.
const (
	TypeValidation  = "/errors/validation"
	TypeNotFound    = "/errors/not-found"
	TypeRateLimit   = "/errors/rate-limit"
	TypeInternal    = "/errors/internal"
	TypeTimeout     = "/errors/timeout"
	TypeExportError = "/errors/export-failed"
)

// APIError is a structured problem-details error response.
type APIError struct {
	Type    string      `json:"type"`
	Title   string      `json:"title"`
	Status  int         `json:"status"`
	Detail  string      `json:"detail,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Title + ": " + e.Detail
	}
	return e.Title
}

// Render implements the render.Renderer interface for chi/render.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/problem+json")
	render.Status(r, e.Status)
	return nil
}

// New creates a new APIError.
func New(problemType, title string, status int, detail string) *APIError {
	return &APIError{
		Type:   problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// WithTraceID returns a copy of the error carrying the trace ID.
func (e *APIError) WithTraceID(traceID string) *APIError {
	clone := *e
	clone.TraceID = traceID
	return &clone
}

// ErrValidation creates a validation error for a named field.
func ErrValidation(field, detail string) *APIError {
	return &APIError{
		Type:    TypeValidation,
		Title:   "Validation Failed",
		Status:  http.StatusBadRequest,
		Detail:  detail,
		Details: map[string]string{"field": field},
	}
}

// ErrNotFound creates a not-found error for a resource.
func ErrNotFound(detail string) *APIError {
	return New(TypeNotFound, "Not Found", http.StatusNotFound, detail)
}

// ErrInternal creates an internal server error.
func ErrInternal(detail string) *APIError {
	return New(TypeInternal, "Internal Server Error", http.StatusInternalServerError, detail)
}

// ErrExport creates an export-failure error.
func ErrExport(detail string) *APIError {
	return New(TypeExportError, "Export Failed", http.StatusInternalServerError, detail)
}
