// Package users holds the account endpoints.
package users

import (
	"github.com/ribgsilva/note-service/business/v1/user"
	"go.uber.org/zap"
)

type Handlers struct {
	Log   *zap.SugaredLogger
	Users *user.Core
}
