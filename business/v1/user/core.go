// Package user registers accounts, logs them in and resolves access tokens
// back to accounts.
package user

import (
	"context"

	"github.com/ribgsilva/note-service/business/v1/auth"
	"github.com/ribgsilva/note-service/persistence/v1/user"
	"go.uber.org/zap"
)

// Storer is the credential store used by Core
type Storer interface {
	Insert(ctx context.Context, newU user.NewUser) (user.User, error)
	FindByUsername(ctx context.Context, username string) (user.User, error)
	FindByID(ctx context.Context, id int64) (user.User, error)
	QueryAll(ctx context.Context) ([]user.User, error)
	UpdateRole(ctx context.Context, id int64, role string) (bool, error)
}

type Core struct {
	log    *zap.SugaredLogger
	store  Storer
	tokens *auth.Tokens
}

func NewCore(log *zap.SugaredLogger, store Storer, tokens *auth.Tokens) *Core {
	return &Core{log: log, store: store, tokens: tokens}
}
