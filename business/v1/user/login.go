package user

import (
	"context"

	"github.com/ribgsilva/note-service/business/v1/auth"
	"github.com/ribgsilva/note-service/business/v1/errs"
)

// Login checks the credentials and issues an access token. Unknown users and
// wrong passwords fail the same way.
func (c *Core) Login(ctx context.Context, cr Credentials) (Token, error) {
	found, err := c.store.FindByUsername(ctx, cr.Username)
	if err != nil {
		return Token{}, err
	}

	// found.Password is empty for unknown users, VerifyPassword still does the work
	if !auth.VerifyPassword(found.Password, cr.Password) || found.Id == 0 {
		return Token{}, errs.ErrUnauthorized
	}

	token, err := c.tokens.Issue(found.Username)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: token, TokenType: auth.TokenType}, nil
}

// Authenticate resolves an access token to its user
func (c *Core) Authenticate(ctx context.Context, token string) (User, error) {
	username, err := c.tokens.Subject(token)
	if err != nil {
		c.log.Debugw("authenticate", "ERROR", err)
		return User{}, errs.ErrUnauthorized
	}

	found, err := c.store.FindByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	if found.Id == 0 {
		return User{}, errs.ErrUnauthorized
	}
	return toUser(found), nil
}
