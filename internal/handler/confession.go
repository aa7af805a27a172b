package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/confession-wall/internal/model"
)

// ConfessionService is what ConfessionHandler needs from the service layer.
type ConfessionService interface {
	AddLike(ctx context.Context, id int64) error
	Create(ctx context.Context, content string, userID int64) (*model.Confession, error)
	List(ctx context.Context) ([]model.Confession, error)
	Get(ctx context.Context, id int64) (*model.Confession, error)
}

// ConfessionHandler serves /api/confessions.
type ConfessionHandler struct {
	svc    ConfessionService
	logger *slog.Logger
}

func NewConfessionHandler(svc ConfessionService, logger *slog.Logger) *ConfessionHandler {
	return &ConfessionHandler{svc: svc, logger: logger}
}

// HandleLike adds one like to a confession.
//
// HTTP: POST /api/confessions/likes?id=5
//
// The id arrives as a query parameter, not a path segment. A missing id and
// a malformed id get different messages.
func (h *ConfessionHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		writeErrorMessage(w, http.StatusBadRequest, msgMissingID)
		return
	}

	id, err := parseID(raw)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.svc.AddLike(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msgLikeAdded})
}

// HandleCreate saves a new confession.
//
// HTTP: POST /api/confessions
func (h *ConfessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := decodePostRequest(r)
	if err != nil {
		h.logger.Warn("invalid confession JSON", slog.String("error", err.Error()))
		writeErrorMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if _, err := h.svc.Create(r.Context(), req.content(), req.UserID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: msgConfessionCreate})
}

// HandleList returns all confessions.
//
// HTTP: GET /api/confessions
func (h *ConfessionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleGet returns one confession.
//
// HTTP: GET /api/confessions/{id}
func (h *ConfessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
