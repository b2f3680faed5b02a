package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"salespulse/internal/infrastructure"
)

// ErrorHandler converts errors into RFC 7807 responses and logs them.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{logger: logger.With(slog.String("component", "error_handler"))}
}

// HandleError writes err as problem details. Non-APIError values become an
// opaque internal error; the original error goes to the log, not the client.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	ctx := r.Context()
	traceID := infrastructure.GetTraceID(ctx)

	apiErr, ok := err.(*APIError)
	if !ok {
		h.logger.ErrorContext(ctx, "unhandled error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path))
		apiErr = ErrInternal("An unexpected error occurred")
	} else if apiErr.Status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "request failed",
			slog.String("error", apiErr.Error()),
			slog.Int("status", apiErr.Status),
			slog.String("path", r.URL.Path))
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(apiErr.Status)
	if encodeErr := json.NewEncoder(w).Encode(apiErr.WithTraceID(traceID)); encodeErr != nil {
		h.logger.ErrorContext(ctx, "failed to write error response",
			slog.String("error", encodeErr.Error()))
	}
}
