package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventlisting/internal/domain"
)

// Status labels carried in ApiError.Status.
const (
	StatusBadRequest    = "BAD_REQUEST"
	StatusUnauthorized  = "UNAUTHORIZED"
	StatusForbidden     = "FORBIDDEN"
	StatusNotFound      = "NOT_FOUND"
	StatusConflict      = "CONFLICT"
	StatusInternalError = "INTERNAL_SERVER_ERROR"
)

// ApiError is the body of every error response.
// swagger:model ApiError
type ApiError struct {
	Errors    []string `json:"errors"`
	Message   string   `json:"message"`
	Reason    string   `json:"reason"`
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
}

type errorMapping struct {
	code   int
	status string
	reason string
}

var errorMappings = map[domain.ErrorKind]errorMapping{
	domain.KindValidation: {http.StatusBadRequest, StatusBadRequest, "The request was made with errors"},
	domain.KindForbidden:  {http.StatusForbidden, StatusForbidden, "The conditions for the operation are not met"},
	domain.KindNotFound:   {http.StatusNotFound, StatusNotFound, "The required object was not found"},
	domain.KindConflict:   {http.StatusConflict, StatusConflict, "Integrity constraint has been violated"},
	domain.KindInternal:   {http.StatusInternalServerError, StatusInternalError, "Internal server error"},
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteAPIError writes an ApiError body with the given code and status label.
func WriteAPIError(w http.ResponseWriter, statusCode int, status, reason, message string, errs []string) {
	if errs == nil {
		errs = []string{}
	}
	WriteJSON(w, statusCode, ApiError{
		Errors:    errs,
		Message:   message,
		Reason:    reason,
		Status:    status,
		Timestamp: time.Now().Format(domain.DateTimeLayout),
	})
}

// WriteError maps err to its HTTP status and writes it as an ApiError. Errors
// that are not domain errors are logged and reported without their message.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	kind := domain.KindOf(err)
	m := errorMappings[kind]

	message := err.Error()
	var de *domain.Error
	if !errors.As(err, &de) {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		message = "internal server error"
	} else if kind == domain.KindInternal {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	WriteAPIError(w, m.code, m.status, m.reason, message, nil)
}

// WriteValidationError writes a 400 with the given field errors.
func WriteValidationError(w http.ResponseWriter, message string, errs []string) {
	m := errorMappings[domain.KindValidation]
	WriteAPIError(w, m.code, m.status, m.reason, message, errs)
}
