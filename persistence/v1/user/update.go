package user

import (
	"context"
	"fmt"
	"time"

	"github.com/ribgsilva/note-service/platform/database"
)

// UpdateRole changes the role of a user, reporting whether the user exists
func (s *Store) UpdateRole(ctx context.Context, id int64, role string) (bool, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	var updated bool
	err := database.WithTx(dbCtx, s.db, func(ctx context.Context, tx database.DBTX) error {
		res, err := tx.ExecContext(ctx, "UPDATE users SET role = ?, updated_at = ? WHERE id = ?", role, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("failed to exec update stmt: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		updated = n == 1
		return nil
	})
	return updated, err
}
