package note

import (
	"context"
	"fmt"
	"time"

	"github.com/ribgsilva/note-service/platform/database"
)

func (s *Store) Insert(ctx context.Context, newN NewNote) (Note, error) {
	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.timeout)
	defer dbCancel()

	var created Note
	err := database.WithTx(dbCtx, s.db, func(ctx context.Context, tx database.DBTX) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO notes (title, content, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			newN.Title, newN.Content, newN.OwnerId, n, n)
		if err != nil {
			return fmt.Errorf("failed to exec insert stmt: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted id: %w", err)
		}
		created, err = scan(tx.QueryRowContext(ctx, "SELECT "+columns+" FROM notes WHERE id = ?", id))
		if err != nil {
			return fmt.Errorf("error parsing db data: %w", err)
		}
		return nil
	})
	return created, err
}
