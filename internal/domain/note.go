package domain

import (
	"slices"
	"time"
)

// Note is a titled piece of text that may be archived and linked to any
// number of categories. Categories is a set: no duplicates, order irrelevant.
type Note struct {
	ID         int64      `db:"id"`
	Title      string     `db:"title"`
	Content    *string    `db:"content"`
	Archived   bool       `db:"archived"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	Categories []Category `db:"-"`
}

// NoteFields holds the writable scalar columns of a note.
type NoteFields struct {
	Title    string
	Content  *string
	Archived bool
}

// HasCategory reports whether the note is linked to the given category.
func (n *Note) HasCategory(categoryID int64) bool {
	return slices.ContainsFunc(n.Categories, func(c Category) bool {
		return c.ID == categoryID
	})
}

// CategoryIDs returns the ids of the linked categories.
func (n *Note) CategoryIDs() []int64 {
	ids := make([]int64, len(n.Categories))
	for i, c := range n.Categories {
		ids[i] = c.ID
	}
	return ids
}
