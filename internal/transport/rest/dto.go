package rest

import (
	"cmp"
	"slices"
	"time"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

type categoryRequest struct {
	Name string `json:"name"`
}

type noteRequest struct {
	Title       string  `json:"title"`
	Content     *string `json:"content"`
	Archived    *bool   `json:"archived"`
	CategoryIDs []int64 `json:"categoryIds"`
}

type categoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type categoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type noteResponse struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	Content    *string       `json:"content"`
	Archived   bool          `json:"archived"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	Categories []categoryRef `json:"categories"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func toCategoryResponses(cs []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(cs))
	for i := range cs {
		out[i] = toCategoryResponse(&cs[i])
	}
	return out
}

func toNoteResponse(n *domain.Note) noteResponse {
	refs := make([]categoryRef, len(n.Categories))
	for i, c := range n.Categories {
		refs[i] = categoryRef{ID: c.ID, Name: c.Name}
	}
	slices.SortFunc(refs, func(a, b categoryRef) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	return noteResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Archived:   n.Archived,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		Categories: refs,
	}
}

func toNoteResponses(ns []domain.Note) []noteResponse {
	out := make([]noteResponse, len(ns))
	for i := range ns {
		out[i] = toNoteResponse(&ns[i])
	}
	return out
}
