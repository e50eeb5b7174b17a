// Package note implements owner scoped note CRUD on top of the store with a
// cache-aside layer for reads.
package note

import (
	"context"
	"time"

	"github.com/ribgsilva/note-service/persistence/v1/note"
	"go.uber.org/zap"
)

// Storer is the durable note store used by Core
type Storer interface {
	Insert(ctx context.Context, newN note.NewNote) (note.Note, error)
	Find(ctx context.Context, id int64) (note.Note, error)
	Query(ctx context.Context, f note.Filter) ([]note.Note, error)
	QueryAll(ctx context.Context) ([]note.Note, error)
	Update(ctx context.Context, n note.Note) error
	Delete(ctx context.Context, id int64) error
}

// Cacher is a best effort key/value cache. It never fails, a problem is a miss.
type Cacher interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

type Core struct {
	log      *zap.SugaredLogger
	store    Storer
	cache    Cacher
	notesTTL time.Duration
	noteTTL  time.Duration
	now      func() time.Time
}

func NewCore(log *zap.SugaredLogger, store Storer, cache Cacher, notesTTL, noteTTL time.Duration) *Core {
	return &Core{
		log:      log,
		store:    store,
		cache:    cache,
		notesTTL: notesTTL,
		noteTTL:  noteTTL,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
