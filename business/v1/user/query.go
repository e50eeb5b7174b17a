package user

import (
	"context"
	"fmt"

	"github.com/ribgsilva/note-service/business/v1/errs"
)

// QueryAll lists every account. Only admins may call it.
func (c *Core) QueryAll(ctx context.Context, actor User) ([]User, error) {
	if actor.Role != RoleAdmin {
		return nil, errs.ErrForbidden
	}

	found, err := c.store.QueryAll(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(found))
	for _, u := range found {
		users = append(users, toUser(u))
	}
	return users, nil
}

// SetRole changes the role of username. It is not reachable over http.
func (c *Core) SetRole(ctx context.Context, username, role string) error {
	if role != RoleUser && role != RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", errs.ErrValidation, role)
	}

	found, err := c.store.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if found.Id == 0 {
		return errs.ErrNotFound
	}

	ok, err := c.store.UpdateRole(ctx, found.Id, role)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrNotFound
	}
	c.log.Infow("role", "user", found.Id, "role", role)
	return nil
}
