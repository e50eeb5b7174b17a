package note

import (
	"database/sql"
	"time"
)

// Store reads and writes the notes table
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

func scan(row scanner) (Note, error) {
	var n Note
	err := row.Scan(&n.Id, &n.Title, &n.Content, &n.OwnerId, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

func scanAll(rows *sql.Rows) ([]Note, error) {
	defer rows.Close()
	notes := make([]Note, 0)
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
