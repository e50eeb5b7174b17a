package note

import "time"

type Note struct {
	Id        int64
	Title     string
	Content   string
	OwnerId   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewNote struct {
	Title   string
	Content string
	OwnerId int64
}

// Filter narrows an owner's notes. An empty Search matches everything.
type Filter struct {
	OwnerId int64
	Skip    int
	Limit   int
	Search  string
}

const columns = "id, title, content, owner_id, created_at, updated_at"
