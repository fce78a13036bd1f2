package rest

import "net/http"

// NewRouter registers every REST route on a fresh ServeMux.
func NewRouter(categories *CategoryHandler, notes *NoteHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /categories", categories.List)
	mux.HandleFunc("GET /categories/{id}", categories.Get)
	mux.HandleFunc("POST /categories", categories.Create)
	mux.HandleFunc("PUT /categories/{id}", categories.Update)
	mux.HandleFunc("DELETE /categories/{id}", categories.Delete)

	mux.HandleFunc("GET /notes/active", notes.ListActive)
	mux.HandleFunc("GET /notes/archived", notes.ListArchived)
	mux.HandleFunc("GET /notes/category/{categoryId}", notes.ListByCategory)
	mux.HandleFunc("GET /notes/{id}", notes.Get)
	mux.HandleFunc("POST /notes", notes.Create)
	mux.HandleFunc("PUT /notes/{id}", notes.Update)
	mux.HandleFunc("DELETE /notes/{id}", notes.Delete)
	mux.HandleFunc("PATCH /notes/{id}/archive", notes.Archive)
	mux.HandleFunc("PATCH /notes/{id}/unarchive", notes.Unarchive)
	mux.HandleFunc("POST /notes/{noteId}/categories", notes.AddCategories)
	mux.HandleFunc("DELETE /notes/{noteId}/categories/{categoryId}", notes.RemoveCategory)

	return mux
}
