package models

import "time"

type Comment struct {
	ID        int64      `json:"id"`
	AuthorID  int64      `json:"author_id"`
	EventID   int64      `json:"event_id"`
	Content   string     `json:"content"`
	Rate      *int       `json:"rate"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type CommentFilter struct {
	ID       *int64
	AuthorID *int64
	EventID  *int64
	Rate     *int
	Content  string
}
