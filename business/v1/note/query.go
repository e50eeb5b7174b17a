package note

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/note-service/business/v1/errs"
	"github.com/ribgsilva/note-service/persistence/v1/note"
)

// Query lists the notes of ownerID
func (c *Core) Query(ctx context.Context, ownerID int64, f Filter) ([]Note, error) {
	if f.Skip < 0 {
		return nil, fmt.Errorf("%w: skip must be >= 0", errs.ErrValidation)
	}
	if f.Limit < 1 || f.Limit > MaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", errs.ErrValidation, MaxLimit)
	}

	found, err := c.store.Query(ctx, note.Filter{
		OwnerId: ownerID,
		Skip:    f.Skip,
		Limit:   f.Limit,
		Search:  f.Search,
	})
	if err != nil {
		return nil, err
	}
	return toNotes(found), nil
}

// QueryCached lists every note, served from notes:all while it is fresh
func (c *Core) QueryCached(ctx context.Context) ([]Note, error) {
	if get, ok := c.cache.Get(ctx, notesKey); ok {
		var notes []Note
		if err := json.Unmarshal([]byte(get), &notes); err != nil {
			c.log.Errorw("cache", "key", notesKey, "ERROR", err)
		} else {
			return notes, nil
		}
	}

	found, err := c.store.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	notes := toNotes(found)

	if data, err := json.Marshal(notes); err != nil {
		c.log.Errorw("cache", "key", notesKey, "ERROR", err)
	} else {
		c.cache.Set(ctx, notesKey, string(data), c.notesTTL)
	}
	return notes, nil
}
