// Package response provides the JSON envelope shared by every API endpoint.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

// Envelope provides a consistent JSON response structure.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

// JSON writes data inside an envelope with the given status code.
func JSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	write(w, status, Envelope{Success: status < 400, Data: data}, logger)
}

// Success writes a 200 OK envelope.
func Success(w http.ResponseWriter, data any, logger *slog.Logger) {
	JSON(w, http.StatusOK, data, logger)
}

// Error writes an error envelope with the given status code.
func Error(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	write(w, status, Envelope{Success: false, Error: message}, logger)
}

func BadRequest(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusBadRequest, message, logger)
}

func InternalError(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusInternalServerError, message, logger)
}

// StatusFor maps an error to its HTTP status. Bad colour input is the caller's fault,
// everything else is ours.
func StatusFor(err error) int {
	switch {
	case domain.IsKind(err, domain.KindInvalidFormat), domain.IsKind(err, domain.KindOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes the envelope matching err's kind. Unknown errors become 500
// and their details stay in the log.
func HandleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := StatusFor(err)
	if status == http.StatusBadRequest {
		BadRequest(w, err.Error(), logger)
		return
	}

	if logger != nil {
		logger.Error("http.unhandled_error", "error", err)
	}
	InternalError(w, "internal server error", logger)
}

func write(w http.ResponseWriter, status int, env Envelope, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil && logger != nil {
		logger.Error("http.encode_failed", "error", err)
	}
}
