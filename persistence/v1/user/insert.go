package user

import (
	"context"
	"fmt"
	"time"

	"github.com/ribgsilva/note-service/platform/database"
)

func (s *Store) Insert(ctx context.Context, newU NewUser) (User, error) {
	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	var created User
	err := database.WithTx(dbCtx, s.db, func(ctx context.Context, tx database.DBTX) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO users (username, password, email, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			newU.Username, newU.Password, newU.Email, newU.Role, n, n)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateUsername
			}
			return fmt.Errorf("failed to exec insert stmt: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted id: %w", err)
		}
		created, err = scan(tx.QueryRowContext(ctx, "SELECT "+columns+" FROM users WHERE id = ?", id))
		if err != nil {
			return fmt.Errorf("error parsing db data: %w", err)
		}
		return nil
	})
	return created, err
}
