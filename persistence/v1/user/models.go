package user

import (
	"database/sql"
	"time"
)

type User struct {
	Id        int64
	Username  string
	Password  string
	Email     sql.NullString
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewUser struct {
	Username string
	Password string
	Email    sql.NullString
	Role     string
}

const columns = "id, username, password, email, role, created_at, updated_at"
