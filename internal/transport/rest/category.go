package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/notes-backend/internal/domain"
	"github.com/heartmarshall/notes-backend/internal/service/category"
)

// categoryService defines the minimal interface needed by CategoryHandler.
type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryHandler serves /categories endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(cs))
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := category.CreateCategoryInput{Name: req.Name}.Normalize()
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := category.UpdateCategoryInput{ID: id, Name: req.Name}.Normalize()
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
