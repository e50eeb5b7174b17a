package note

import (
	"context"
	"fmt"

	"github.com/ribgsilva/note-service/platform/database"
)

// Update writes title, content and updatedAt of n
func (s *Store) Update(ctx context.Context, n Note) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	return database.WithTx(dbCtx, s.db, func(ctx context.Context, tx database.DBTX) error {
		_, err := tx.ExecContext(ctx,
			"UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?",
			n.Title, n.Content, n.UpdatedAt, n.Id)
		if err != nil {
			return fmt.Errorf("failed to exec update stmt: %w", err)
		}
		return nil
	})
}
