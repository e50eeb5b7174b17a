package user

import (
	"time"

	"github.com/ribgsilva/note-service/persistence/v1/user"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the public view of an account
type User struct {
	Id        int64     `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     *string   `json:"email,omitempty" example:"alice@example.com"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
}

type NewUser struct {
	Username string  `json:"username" form:"username" example:"alice"`
	Password string  `json:"password" form:"password" example:"strongpassword"`
	Email    *string `json:"email,omitempty" form:"email" example:"alice@example.com"`
}

type Credentials struct {
	Username string `json:"username" form:"username" example:"alice"`
	Password string `json:"password" form:"password" example:"strongpassword"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

func toUser(u user.User) User {
	out := User{
		Id:        u.Id,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Email.Valid {
		email := u.Email.String
		out.Email = &email
	}
	return out
}
