package note

import (
	"time"

	"github.com/ribgsilva/note-service/persistence/v1/note"
)

const (
	notesKey = "notes:all"
	noteKey  = "note:%d"

	DefaultLimit = 10
	MaxLimit     = 100
)

type Note struct {
	Id        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note content"`
	OwnerId   int64     `json:"-"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
}

type NewNote struct {
	Title   string `json:"title" example:"my note"`
	Content string `json:"content" example:"my note content"`
}

// UpdateNote holds the fields of a partial update. A nil field is left untouched.
type UpdateNote struct {
	Title   *string `json:"title,omitempty" example:"new title"`
	Content *string `json:"content,omitempty" example:"new content"`
}

type Filter struct {
	Skip   int
	Limit  int
	Search string
}

func toNotes(found []note.Note) []Note {
	notes := make([]Note, 0, len(found))
	for _, n := range found {
		notes = append(notes, Note(n))
	}
	return notes
}
