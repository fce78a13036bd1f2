package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/notes-backend/internal/domain"
	"github.com/heartmarshall/notes-backend/internal/service/note"
)

// noteService defines the minimal interface needed by NoteHandler.
type noteService interface {
	ListActive(ctx context.Context) ([]domain.Note, error)
	ListArchived(ctx context.Context) ([]domain.Note, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Note, error)
	Get(ctx context.Context, id int64) (*domain.Note, error)
	Create(ctx context.Context, input note.CreateNoteInput) (*domain.Note, error)
	Update(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, id int64) error
	Archive(ctx context.Context, id int64) (*domain.Note, error)
	Unarchive(ctx context.Context, id int64) (*domain.Note, error)
	AddCategories(ctx context.Context, noteID int64, categoryIDs []int64) (*domain.Note, error)
	RemoveCategory(ctx context.Context, noteID, categoryID int64) (*domain.Note, error)
}

// NoteHandler serves /notes endpoints.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

// ListActive handles GET /notes/active.
func (h *NoteHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r)(h.svc.ListActive(r.Context()))
}

// ListArchived handles GET /notes/archived.
func (h *NoteHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r)(h.svc.ListArchived(r.Context()))
}

// ListByCategory handles GET /notes/category/{categoryId}.
func (h *NoteHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "categoryId")
	if !ok {
		return
	}
	h.writeList(w, r)(h.svc.ListByCategory(r.Context(), categoryID))
}

// Get handles GET /notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.writeNote(w, r, http.StatusOK)(h.svc.Get(r.Context(), id))
}

// Create handles POST /notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := note.CreateNoteInput{
		Title:       req.Title,
		Content:     req.Content,
		Archived:    req.Archived,
		CategoryIDs: req.CategoryIDs,
	}.Normalize()
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeNote(w, r, http.StatusCreated)(h.svc.Create(r.Context(), input))
}

// Update handles PUT /notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := note.UpdateNoteInput{
		ID:          id,
		Title:       req.Title,
		Content:     req.Content,
		Archived:    req.Archived,
		CategoryIDs: req.CategoryIDs,
	}.Normalize()
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeNote(w, r, http.StatusOK)(h.svc.Update(r.Context(), input))
}

// Delete handles DELETE /notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Archive handles PATCH /notes/{id}/archive.
func (h *NoteHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.writeNote(w, r, http.StatusOK)(h.svc.Archive(r.Context(), id))
}

// Unarchive handles PATCH /notes/{id}/unarchive.
func (h *NoteHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.writeNote(w, r, http.StatusOK)(h.svc.Unarchive(r.Context(), id))
}

// AddCategories handles POST /notes/{noteId}/categories. The body is a
// JSON array of category ids.
func (h *NoteHandler) AddCategories(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathID(w, r, "noteId")
	if !ok {
		return
	}
	var ids []int64
	if !decodeJSON(w, r, &ids) {
		return
	}
	h.writeNote(w, r, http.StatusOK)(h.svc.AddCategories(r.Context(), noteID, ids))
}

// RemoveCategory handles DELETE /notes/{noteId}/categories/{categoryId}.
func (h *NoteHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	noteID, ok := pathID(w, r, "noteId")
	if !ok {
		return
	}
	categoryID, ok := pathID(w, r, "categoryId")
	if !ok {
		return
	}
	h.writeNote(w, r, http.StatusOK)(h.svc.RemoveCategory(r.Context(), noteID, categoryID))
}

func (h *NoteHandler) writeNote(w http.ResponseWriter, r *http.Request, status int) func(*domain.Note, error) {
	return func(n *domain.Note, err error) {
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, status, toNoteResponse(n))
	}
}

func (h *NoteHandler) writeList(w http.ResponseWriter, r *http.Request) func([]domain.Note, error) {
	return func(ns []domain.Note, err error) {
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toNoteResponses(ns))
	}
}
