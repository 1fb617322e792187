package handler

import (
	"encoding/json"
	"net/http"

	"menu-kart/internal/model"
	"menu-kart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionHandler handles browsing-session HTTP requests.
type SessionHandler struct {
	service service.SessionService
	logger  zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.With().Str("handler", "session").Logger(),
	}
}

// Start handles POST /api/sessions requests.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.RestaurantID == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "restaurantId is required", h.logger)
		return
	}

	view, err := h.service.Start(r.Context(), req.RestaurantID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// View handles GET /api/sessions/{id} requests.
func (h *SessionHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.View(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// End handles DELETE /api/sessions/{id} requests.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.End(r.Context(), id); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Increment handles POST /api/sessions/{id}/sections/{sectionId}/items/{itemId}/increment.
func (h *SessionHandler) Increment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	m, err := h.service.Increment(r.Context(), id, r.PathValue("sectionId"), r.PathValue("itemId"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// Decrement handles POST /api/sessions/{id}/sections/{sectionId}/items/{itemId}/decrement.
func (h *SessionHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	m, err := h.service.Decrement(r.Context(), id, r.PathValue("sectionId"), r.PathValue("itemId"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

// AddToCart handles POST /api/sessions/{id}/sections/{sectionId}/items/{itemId}/cart.
func (h *SessionHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	line, err := h.service.AddToCart(r.Context(), id, r.PathValue("sectionId"), r.PathValue("itemId"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, line)
}

// Cart handles GET /api/sessions/{id}/cart requests.
func (h *SessionHandler) Cart(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	cart, err := h.service.Cart(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

func (h *SessionHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidParameter, "invalid session ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}
