package models

import "time"

// PageSize is the number of ideas returned per page by list and ranking queries.
const PageSize = 10

// IdeaDB represents an idea row in the database
type IdeaDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Title     string    `json:"title" db:"title"`           // Idea title
	Body      string    `json:"body" db:"body"`             // Idea text (Markdown)
	UpVotes   int64     `json:"up_votes" db:"up_votes"`     // Number of standing upvotes
	DownVotes int64     `json:"down_votes" db:"down_votes"` // Number of standing downvotes
	Username  string    `json:"user_name" db:"user_name"`   // Owner of the idea
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// RankedIdeaDB is an idea together with the signed vote sum used for ranking.
type RankedIdeaDB struct {
	IdeaDB
	Score int64 `json:"score" db:"score"` // SUM(direction) over the ranking window
}

// Offset converts a 1-indexed page number into a row offset.
func Offset(page int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * PageSize
}
