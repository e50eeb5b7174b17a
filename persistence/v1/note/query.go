package note

import (
	"context"
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Query returns the notes of f.OwnerId ordered by id. Search matches title or
// content as a case-insensitive substring.
func (s *Store) Query(ctx context.Context, f Filter) ([]Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	q := "SELECT " + columns + " FROM notes WHERE owner_id = ?"
	args := []any{f.OwnerId}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(f.Search)) + "%"
		q += " AND (LOWER(title) LIKE ? ESCAPE '!' OR LOWER(content) LIKE ? ESCAPE '!')"
		args = append(args, pattern, pattern)
	}
	q += " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Skip)

	rows, err := s.db.QueryContext(dbCtx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	notes, err := scanAll(rows)
	if err != nil {
		return nil, fmt.Errorf("error parsing db data: %w", err)
	}
	return notes, nil
}

// QueryAll returns every note of every owner ordered by id
func (s *Store) QueryAll(ctx context.Context) ([]Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	rows, err := s.db.QueryContext(dbCtx, "SELECT "+columns+" FROM notes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	notes, err := scanAll(rows)
	if err != nil {
		return nil, fmt.Errorf("error parsing db data: %w", err)
	}
	return notes, nil
}
