package schema

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Drop rolls back every applied migration
func Drop(ctx context.Context, log *zap.SugaredLogger, db *sql.DB, driver string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := setup(log, driver); err != nil {
		return errors.New("drop schema: " + err.Error())
	}
	if err := goose.ResetContext(ctx, db, "."); err != nil {
		return errors.New("drop schema: " + err.Error())
	}

	return nil
}
