package user

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicateUsername is returned by Insert when the unique username constraint rejects the row
var ErrDuplicateUsername = errors.New("duplicate username")

// Store reads and writes the users table
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

func NewStore(db *sql.DB, operationTimeout time.Duration) *Store {
	return &Store{db: db, timeout: operationTimeout}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (User, error) {
	var u User
	err := row.Scan(&u.Id, &u.Username, &u.Password, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func isUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
