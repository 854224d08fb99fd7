package models

// Vote operations carried by VoteEvent.
const (
	OperationCastUpvote      = "cast_upvote"
	OperationCastDownvote    = "cast_downvote"
	OperationRetractUpvote   = "retract_upvote"
	OperationRetractDownvote = "retract_downvote"
)

// VoteEvent describes a committed vote operation and the resulting idea counters.
type VoteEvent struct {
	EventID   string    `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64     `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) of the commit.
	Operation string    `json:"operation"`  // Operation is one of the Operation* constants.
	Username  string    `json:"user_name"`  // Username is the voting user.
	IdeaID    int64     `json:"idea_id"`    // IdeaID is the target idea.
	Direction Direction `json:"direction"`  // Direction of the vote that was cast or retracted.
	UpVotes   int64     `json:"up_votes"`   // UpVotes after the operation.
	DownVotes int64     `json:"down_votes"` // DownVotes after the operation.
}
