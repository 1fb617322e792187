package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"menu-kart/internal/middleware"
	"menu-kart/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to tell the client.
		return
	}
}

// writeError writes a model.ErrorResponse tagged with the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.CorrelationIDFrom(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("code", code).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg(message)

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps a service error onto an HTTP status. Domain errors
// keep their code and message; anything else is reported as an internal error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected service error")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	writeError(w, r, statusFor(domainErr), domainErr.Code, domainErr.Message, logger)
}

func statusFor(err *model.DomainError) int {
	switch err.Code {
	case model.ErrCodeNotFound, model.ErrCodeRestaurantNotFound, model.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case model.ErrCodeOutOfStock, model.ErrCodeQuantityLimit:
		return http.StatusConflict
	case model.ErrCodeInvalidQuantity:
		return http.StatusUnprocessableEntity
	case model.ErrCodeInvalidJSON, model.ErrCodeMissingField, model.ErrCodeInvalidParameter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// queryInt reads an integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
