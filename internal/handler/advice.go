package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/confession-wall/internal/model"
)

// AdviceService is what AdviceHandler needs from the service layer.
type AdviceService interface {
	Create(ctx context.Context, content string, userID int64) (*model.Advice, error)
	List(ctx context.Context) ([]model.Advice, error)
	Get(ctx context.Context, id int64) (*model.Advice, error)
}

// AdviceHandler serves /api/advice.
type AdviceHandler struct {
	svc    AdviceService
	logger *slog.Logger
}

func NewAdviceHandler(svc AdviceService, logger *slog.Logger) *AdviceHandler {
	return &AdviceHandler{svc: svc, logger: logger}
}

// postRequest is the body accepted when creating advice or a confession.
// Content is a pointer so a missing field and an explicit null both decode
// to nil; both are rejected as "Content is required" by the service.
type postRequest struct {
	Content *string `json:"content"`
	UserID  int64   `json:"userId"`
}

func (p postRequest) content() string {
	if p.Content == nil {
		return ""
	}
	return *p.Content
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodePostRequest reads a postRequest. An empty body is treated as {};
// anything after the first JSON value is rejected.
func decodePostRequest(r *http.Request) (postRequest, error) {
	var req postRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return postRequest{}, nil
		}
		return postRequest{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return postRequest{}, errTrailingData
	}
	return req, nil
}

// HandleList returns all advice.
//
// HTTP: GET /api/advice
func (h *AdviceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleCreate saves a new advice post.
//
// HTTP: POST /api/advice
// REQUEST BODY: {"content": "Drink water", "userId": 3}
func (h *AdviceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := decodePostRequest(r)
	if err != nil {
		h.logger.Warn("invalid advice JSON", slog.String("error", err.Error()))
		writeErrorMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if _, err := h.svc.Create(r.Context(), req.content(), req.UserID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: msgAdviceCreated})
}

// HandleGet returns one advice post.
//
// HTTP: GET /api/advice/{id}
func (h *AdviceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	advice, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, advice)
}
