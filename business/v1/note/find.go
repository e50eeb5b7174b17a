package note

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/note-service/business/v1/errs"
)

// Find returns the note id of ownerID. Notes of other owners are reported as absent.
func (c *Core) Find(ctx context.Context, ownerID, id int64) (Note, error) {
	n, err := c.find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if n.Id == 0 || n.OwnerId != ownerID {
		return Note{}, errs.ErrNotFound
	}
	return n, nil
}

// find reads through note:{id}. A zero Note means there is no such id.
func (c *Core) find(ctx context.Context, id int64) (Note, error) {
	key := fmt.Sprintf(noteKey, id)

	if get, ok := c.cache.Get(ctx, key); ok {
		var cn cachedNote
		if err := json.Unmarshal([]byte(get), &cn); err != nil {
			c.log.Errorw("cache", "key", key, "ERROR", err)
		} else {
			n := cn.Note
			n.OwnerId = cn.OwnerId
			return n, nil
		}
	}

	found, err := c.store.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if found.Id == 0 {
		return Note{}, nil
	}

	n := Note(found)
	if data, err := json.Marshal(cached(n)); err != nil {
		c.log.Errorw("cache", "key", key, "ERROR", err)
	} else {
		c.cache.Set(ctx, key, string(data), c.noteTTL)
	}
	return n, nil
}

// cached keeps the owner in the cached copy, the api view hides it
type cachedNote struct {
	Note
	OwnerId int64 `json:"owner_id"`
}

func cached(n Note) cachedNote {
	return cachedNote{Note: n, OwnerId: n.OwnerId}
}
