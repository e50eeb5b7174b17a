package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/note-service/platform/database"
)

func (s *Store) Delete(ctx context.Context, id int64) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	return database.WithTx(dbCtx, s.db, func(ctx context.Context, tx database.DBTX) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); err != nil {
			return fmt.Errorf("failed to exec delete stmt: %w", err)
		}
		return nil
	})
}
