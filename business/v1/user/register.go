package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/ribgsilva/note-service/business/v1/auth"
	"github.com/ribgsilva/note-service/business/v1/errs"
	"github.com/ribgsilva/note-service/persistence/v1/user"
)

const maxUsername = 255

func validate(nu NewUser) error {
	switch {
	case strings.TrimSpace(nu.Username) == "" || len(nu.Username) > maxUsername:
		return fmt.Errorf("%w: username must have between 1 and %d characters", errs.ErrValidation, maxUsername)
	case nu.Password == "":
		return fmt.Errorf("%w: password must not be empty", errs.ErrValidation)
	}
	if nu.Email != nil {
		if _, err := mail.ParseAddress(*nu.Email); err != nil {
			return fmt.Errorf("%w: invalid email", errs.ErrValidation)
		}
	}
	return nil
}

// Register creates an account with the user role
func (c *Core) Register(ctx context.Context, nu NewUser) (User, error) {
	if err := validate(nu); err != nil {
		return User{}, err
	}

	existing, err := c.store.FindByUsername(ctx, nu.Username)
	if err != nil {
		return User{}, err
	}
	if existing.Id != 0 {
		return User{}, errs.ErrConflict
	}

	hash, err := auth.HashPassword(nu.Password)
	if err != nil {
		return User{}, err
	}

	newU := user.NewUser{
		Username: nu.Username,
		Password: hash,
		Role:     RoleUser,
	}
	if nu.Email != nil {
		newU.Email = sql.NullString{String: *nu.Email, Valid: true}
	}

	created, err := c.store.Insert(ctx, newU)
	switch {
	case errors.Is(err, user.ErrDuplicateUsername):
		return User{}, errs.ErrConflict
	case err != nil:
		return User{}, err
	}

	c.log.Infow("register", "user", created.Id)
	return toUser(created), nil
}
