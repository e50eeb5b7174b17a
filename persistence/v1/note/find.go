package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Find returns a zero Note when there is no such id
func (s *Store) Find(ctx context.Context, id int64) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	n, err := scan(s.db.QueryRowContext(dbCtx, "SELECT "+columns+" FROM notes WHERE id = ?", id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	default:
		return n, nil
	}
}
