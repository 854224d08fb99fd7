package models

import (
	"fmt"
	"time"
)

// Direction is the value of a vote: +1 for an upvote, -1 for a downvote.
type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	return -d
}

// Valid reports whether d is one of Up or Down.
func (d Direction) Valid() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// VoteDB represents a vote row in the database
type VoteDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Direction Direction `json:"direction" db:"direction"`   // +1 or -1
	Username  string    `json:"user_name" db:"user_name"`   // Voting user
	IdeaID    int64     `json:"idea_id" db:"idea_id"`       // Target idea
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
