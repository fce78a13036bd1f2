package domain

import "time"

// Category is a named label that notes can be associated with.
// Names are unique across all categories (exact, case-sensitive match).
type Category struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryWithNoteID is a category row paired with the note it is linked to.
// Used when loading the category sets of many notes in one query.
type CategoryWithNoteID struct {
	NoteID int64 `db:"note_id"`
	Category
}
