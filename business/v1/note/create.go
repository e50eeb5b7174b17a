package note

import (
	"context"

	"github.com/ribgsilva/note-service/persistence/v1/note"
)

// Create stores a note owned by ownerID
func (c *Core) Create(ctx context.Context, ownerID int64, nn NewNote) (Note, error) {
	created, err := c.store.Insert(ctx, note.NewNote{
		Title:   nn.Title,
		Content: nn.Content,
		OwnerId: ownerID,
	})
	if err != nil {
		return Note{}, err
	}

	c.cache.Delete(ctx, notesKey)
	return Note(created), nil
}
