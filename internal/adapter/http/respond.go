package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"linkfolio-promos/internal/core/port"
)

var errUnauthorized = port.ErrUnauthorized

// envelope is the product's JSON response shape: {"status":200,"data":...}
// on success, {"status":<code>,"error":...} on failure.
type envelope struct {
	Status int    `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Status: status, Data: data}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Validation
// errors echo their message; internal failures are logged and masked.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var (
		status  int
		message string
		vErr    *port.ValidationError
	)
	switch {
	case errors.As(err, &vErr):
		status, message = http.StatusBadRequest, vErr.Error()
	case errors.Is(err, port.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, port.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, port.ErrAlreadyProcessed):
		status, message = http.StatusConflict, "AlreadyProcessed"
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		status, message = http.StatusInternalServerError, "internal error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(envelope{Status: status, Error: message}); encErr != nil {
		h.logger.Error("encode response error", slog.Any("error", encErr))
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return port.NewValidationError("body", "malformed JSON")
	}
	return nil
}
