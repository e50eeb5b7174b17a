package schema

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// Create applies every pending migration
func Create(ctx context.Context, log *zap.SugaredLogger, db *sql.DB, driver string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := setup(log, driver); err != nil {
		return errors.New("create schema: " + err.Error())
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.New("create schema: " + err.Error())
	}

	return nil
}
