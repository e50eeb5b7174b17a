package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FindByUsername returns a zero User when there is no such username
func (s *Store) FindByUsername(ctx context.Context, username string) (User, error) {
	return s.findBy(ctx, "username", username)
}

// FindByID returns a zero User when there is no such id
func (s *Store) FindByID(ctx context.Context, id int64) (User, error) {
	return s.findBy(ctx, "id", id)
}

func (s *Store) findBy(ctx context.Context, column string, value any) (User, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	u, err := scan(s.db.QueryRowContext(dbCtx, "SELECT "+columns+" FROM users WHERE "+column+" = ?", value))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return User{}, nil
	case err != nil:
		return User{}, fmt.Errorf("failed to query user by %s: %w", column, err)
	default:
		return u, nil
	}
}

// QueryAll returns every user ordered by id
func (s *Store) QueryAll(ctx context.Context) ([]User, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	rows, err := s.db.QueryContext(dbCtx, "SELECT "+columns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
