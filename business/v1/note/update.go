package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/note-service/persistence/v1/note"
)

// Update applies the present fields of un to the note id of ownerID
func (c *Core) Update(ctx context.Context, ownerID, id int64, un UpdateNote) (Note, error) {
	n, err := c.Find(ctx, ownerID, id)
	if err != nil {
		return Note{}, err
	}

	if un.Title != nil {
		n.Title = *un.Title
	}
	if un.Content != nil {
		n.Content = *un.Content
	}
	n.UpdatedAt = c.now()

	if err := c.store.Update(ctx, note.Note(n)); err != nil {
		return Note{}, err
	}

	c.cache.Delete(ctx, fmt.Sprintf(noteKey, id), notesKey)
	return n, nil
}
