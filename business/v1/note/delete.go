package note

import (
	"context"
	"fmt"
)

// Delete removes the note id of ownerID
func (c *Core) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := c.Find(ctx, ownerID, id); err != nil {
		return err
	}

	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(noteKey, id), notesKey)
	return nil
}
