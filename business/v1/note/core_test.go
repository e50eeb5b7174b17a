package note

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ribgsilva/note-service/business/v1/errs"
	"github.com/ribgsilva/note-service/persistence/v1/note"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memStore struct {
	mu       sync.Mutex
	notes    []note.Note
	queryAll int
	finds    int
}

func (m *memStore) Insert(_ context.Context, nn note.NewNote) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	n := note.Note{Id: int64(len(m.notes) + 1), Title: nn.Title, Content: nn.Content, OwnerId: nn.OwnerId, CreatedAt: now, UpdatedAt: now}
	m.notes = append(m.notes, n)
	return n, nil
}

func (m *memStore) Find(_ context.Context, id int64) (note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds++
	for _, n := range m.notes {
		if n.Id == id {
			return n, nil
		}
	}
	return note.Note{}, nil
}

func (m *memStore) Query(_ context.Context, f note.Filter) ([]note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var owned []note.Note
	for _, n := range m.notes {
		if n.OwnerId != f.OwnerId {
			continue
		}
		s := strings.ToLower(f.Search)
		if s != "" && !strings.Contains(strings.ToLower(n.Title), s) && !strings.Contains(strings.ToLower(n.Content), s) {
			continue
		}
		owned = append(owned, n)
	}
	if f.Skip >= len(owned) {
		return nil, nil
	}
	owned = owned[f.Skip:]
	if len(owned) > f.Limit {
		owned = owned[:f.Limit]
	}
	return owned, nil
}

func (m *memStore) QueryAll(_ context.Context) ([]note.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryAll++
	return append([]note.Note(nil), m.notes...), nil
}

func (m *memStore) Update(_ context.Context, n note.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notes {
		if m.notes[i].Id == n.Id {
			m.notes[i] = n
		}
	}
	return nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notes {
		if m.notes[i].Id == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

type memCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func (m *memCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *memCache) Set(_ context.Context, key, value string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

func (m *memCache) Delete(_ context.Context, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
}

func newCore() (*Core, *memStore, *memCache) {
	store := &memStore{}
	cache := &memCache{entries: map[string]string{}}
	return NewCore(zap.NewNop().Sugar(), store, cache, time.Minute, time.Minute), store, cache
}

const (
	alice = int64(1)
	bob   = int64(2)
)

func TestCreateFindRoundTrip(t *testing.T) {
	c, _, _ := newCore()
	ctx := context.Background()

	created, err := c.Create(ctx, alice, NewNote{Title: "t", Content: "c"})
	require.NoError(t, err)
	require.NotZero(t, created.Id)

	found, err := c.Find(ctx, alice, created.Id)
	require.NoError(t, err)
	require.Equal(t, "t", found.Title)
	require.Equal(t, "c", found.Content)
}

func TestCreateAcceptsAnyTitle(t *testing.T) {
	c, _, _ := newCore()
	for _, title := range []string{"", "   ", strings.Repeat("t", 300)} {
		created, err := c.Create(context.Background(), alice, NewNote{Title: title, Content: "c"})
		require.NoError(t, err)
		require.Equal(t, title, created.Title)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	c, _, _ := newCore()
	ctx := context.Background()

	n, err := c.Create(ctx, alice, NewNote{Title: "secret", Content: "alice only"})
	require.NoError(t, err)

	// warm note:{id} so the cached path is checked too
	_, err = c.Find(ctx, alice, n.Id)
	require.NoError(t, err)

	_, err = c.Find(ctx, bob, n.Id)
	require.ErrorIs(t, err, errs.ErrNotFound)

	title := "stolen"
	_, err = c.Update(ctx, bob, n.Id, UpdateNote{Title: &title})
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.ErrorIs(t, c.Delete(ctx, bob, n.Id), errs.ErrNotFound)

	listed, err := c.Query(ctx, bob, Filter{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, listed)

	found, err := c.Find(ctx, alice, n.Id)
	require.NoError(t, err)
	require.Equal(t, "secret", found.Title)

	_, err = c.Find(ctx, alice, n.Id+1)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFindReadsThroughCache(t *testing.T) {
	c, store, cache := newCore()
	ctx := context.Background()

	n, err := c.Create(ctx, alice, NewNote{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = c.Find(ctx, alice, n.Id)
	require.NoError(t, err)
	_, err = c.Find(ctx, alice, n.Id)
	require.NoError(t, err)
	require.Equal(t, 1, store.finds)

	_, ok := cache.entries["note:1"]
	require.True(t, ok)
}

func TestPartialUpdate(t *testing.T) {
	c, _, cache := newCore()
	ctx := context.Background()

	n, err := c.Create(ctx, alice, NewNote{Title: "t", Content: "c"})
	require.NoError(t, err)
	_, err = c.Find(ctx, alice, n.Id)
	require.NoError(t, err)

	c.now = func() time.Time { return n.UpdatedAt.Add(time.Second) }
	content := "new content"
	updated, err := c.Update(ctx, alice, n.Id, UpdateNote{Content: &content})
	require.NoError(t, err)
	require.Equal(t, "t", updated.Title)
	require.Equal(t, "new content", updated.Content)
	require.True(t, updated.UpdatedAt.After(n.UpdatedAt))

	_, ok := cache.entries["note:1"]
	require.False(t, ok)

	found, err := c.Find(ctx, alice, n.Id)
	require.NoError(t, err)
	require.Equal(t, updated.Content, found.Content)
	require.Equal(t, "t", found.Title)

	empty := ""
	cleared, err := c.Update(ctx, alice, n.Id, UpdateNote{Title: &empty})
	require.NoError(t, err)
	require.Equal(t, "", cleared.Title)
	require.Equal(t, "new content", cleared.Content)
}

func TestDelete(t *testing.T) {
	c, _, _ := newCore()
	ctx := context.Background()

	n, err := c.Create(ctx, alice, NewNote{Title: "t", Content: "c"})
	require.NoError(t, err)
	_, err = c.Find(ctx, alice, n.Id)
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, alice, n.Id))
	_, err = c.Find(ctx, alice, n.Id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestQuerySearchAndPaging(t *testing.T) {
	c, _, _ := newCore()
	ctx := context.Background()

	for i, nn := range []NewNote{
		{Title: "N1", Content: "a"},
		{Title: "b", Content: "has n1 inside"},
		{Title: "c", Content: "c"},
		{Title: "d", Content: "d"},
		{Title: "e", Content: "e"},
	} {
		_, err := c.Create(ctx, alice, nn)
		require.NoError(t, err, i)
	}
	_, err := c.Create(ctx, bob, NewNote{Title: "n1", Content: "bob"})
	require.NoError(t, err)

	found, err := c.Query(ctx, alice, Filter{Limit: 10, Search: "n1"})
	require.NoError(t, err)
	require.Len(t, found, 2)

	first, err := c.Query(ctx, alice, Filter{Skip: 0, Limit: 3})
	require.NoError(t, err)
	require.Len(t, first, 3)
	rest, err := c.Query(ctx, alice, Filter{Skip: 3, Limit: 3})
	require.NoError(t, err)
	require.Len(t, rest, 2)

	_, err = c.Query(ctx, alice, Filter{Skip: -1, Limit: 3})
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = c.Query(ctx, alice, Filter{Limit: 0})
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = c.Query(ctx, alice, Filter{Limit: 101})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestQueryCached(t *testing.T) {
	c, store, _ := newCore()
	ctx := context.Background()

	n, err := c.Create(ctx, alice, NewNote{Title: "t", Content: "c"})
	require.NoError(t, err)

	first, err := c.QueryCached(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	second, err := c.QueryCached(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, first[0].Id, second[0].Id)
	require.Equal(t, first[0].Title, second[0].Title)
	require.Equal(t, 1, store.queryAll)

	_, err = c.Create(ctx, bob, NewNote{Title: "t2", Content: "c2"})
	require.NoError(t, err)
	afterCreate, err := c.QueryCached(ctx)
	require.NoError(t, err)
	require.Len(t, afterCreate, 2)
	require.Equal(t, 2, store.queryAll)

	title := "renamed"
	_, err = c.Update(ctx, alice, n.Id, UpdateNote{Title: &title})
	require.NoError(t, err)
	afterUpdate, err := c.QueryCached(ctx)
	require.NoError(t, err)
	require.Equal(t, "renamed", afterUpdate[0].Title)
	require.Equal(t, 3, store.queryAll)

	require.NoError(t, c.Delete(ctx, alice, n.Id))
	afterDelete, err := c.QueryCached(ctx)
	require.NoError(t, err)
	require.Len(t, afterDelete, 1)
	require.Equal(t, 4, store.queryAll)
}
