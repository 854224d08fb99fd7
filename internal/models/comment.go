package models

import "time"

// CommentDB represents a comment row in the database
type CommentDB struct {
	ID        int64     `json:"id" db:"id"`
	Body      string    `json:"body" db:"body"`
	Username  string    `json:"user_name" db:"user_name"`
	IdeaID    int64     `json:"idea_id" db:"idea_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
