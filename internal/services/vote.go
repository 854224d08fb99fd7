package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/hivemind/internal/logger"
	"github.com/sbilibin2017/hivemind/internal/models"
	"github.com/sbilibin2017/hivemind/internal/repositories"
)

//go:generate mockgen -source=vote.go -destination=vote_mock_test.go -package=services

var (
	// ErrIdeaNotFound is returned when the referenced idea does not exist.
	ErrIdeaNotFound = errors.New("idea not found")
	// ErrDuplicateVote is returned when the user already holds a vote in the requested direction.
	ErrDuplicateVote = errors.New("user has already voted this idea in this direction")
	// ErrVoteNotFound is returned when a retraction finds no matching standing vote.
	ErrVoteNotFound = errors.New("vote not found")
	// ErrSelfVote is returned when the owner of an idea tries to vote on it.
	ErrSelfVote = errors.New("users cannot vote on their own ideas")
	// ErrCounterUnderflow is returned when an idea counter would drop below zero,
	// which means the counters and the vote ledger disagree.
	ErrCounterUnderflow = errors.New("idea vote counter underflow")
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// IdeaCounter locks ideas and adjusts their aggregate vote counters.
type IdeaCounter interface {
	LockByID(ctx context.Context, id int64) (*models.IdeaDB, error)      // Returns nil when the idea does not exist
	IncrementUp(ctx context.Context, id int64) (*models.IdeaDB, error)   // up_votes + 1
	DecrementUp(ctx context.Context, id int64) (*models.IdeaDB, error)   // up_votes - 1, sql.ErrNoRows at zero
	IncrementDown(ctx context.Context, id int64) (*models.IdeaDB, error) // down_votes + 1
	DecrementDown(ctx context.Context, id int64) (*models.IdeaDB, error) // down_votes - 1, sql.ErrNoRows at zero
}

// VoteLedger stores the individual standing votes.
type VoteLedger interface {
	GetByUserAndIdea(ctx context.Context, username string, ideaID int64) (*models.VoteDB, error)                 // Returns nil when there is no standing vote
	Save(ctx context.Context, username string, ideaID int64, direction models.Direction) (*models.VoteDB, error) // Inserts a vote
	Delete(ctx context.Context, id int64) error                                                                  // Removes a vote
	ListByUser(ctx context.Context, username string) ([]models.VoteDB, error)                                    // Lists the votes of a user
}

// VoteService keeps idea counters in lockstep with the vote ledger.
// Every operation runs in one transaction that first locks the idea row,
// so operations on the same idea are serialized.
type VoteService struct {
	tx          Transactor
	ideas       IdeaCounter
	votes       VoteLedger
	kafkaWriter KafkaWriter
}

// NewVoteService creates a new VoteService. kafkaWriter may be nil.
func NewVoteService(tx Transactor, ideas IdeaCounter, votes VoteLedger, kafkaWriter KafkaWriter) *VoteService {
	return &VoteService{
		tx:          tx,
		ideas:       ideas,
		votes:       votes,
		kafkaWriter: kafkaWriter,
	}
}

// CastUpvote records an upvote of username on ideaID, replacing a standing downvote.
func (s *VoteService) CastUpvote(ctx context.Context, username string, ideaID int64) (*models.VoteDB, *models.IdeaDB, error) {
	return s.cast(ctx, models.OperationCastUpvote, username, ideaID, models.Up)
}

// CastDownvote records a downvote of username on ideaID, replacing a standing upvote.
func (s *VoteService) CastDownvote(ctx context.Context, username string, ideaID int64) (*models.VoteDB, *models.IdeaDB, error) {
	return s.cast(ctx, models.OperationCastDownvote, username, ideaID, models.Down)
}

// RetractUpvote removes the standing upvote of username on ideaID.
func (s *VoteService) RetractUpvote(ctx context.Context, username string, ideaID int64) (*models.VoteDB, *models.IdeaDB, error) {
	return s.retract(ctx, models.OperationRetractUpvote, username, ideaID, models.Up)
}

// RetractDownvote removes the standing downvote of username on ideaID.
func (s *VoteService) RetractDownvote(ctx context.Context, username string, ideaID int64) (*models.VoteDB, *models.IdeaDB, error) {
	return s.retract(ctx, models.OperationRetractDownvote, username, ideaID, models.Down)
}

// ListByUser returns the standing votes of username.
func (s *VoteService) ListByUser(ctx context.Context, username string) ([]models.VoteDB, error) {
	votes, err := s.votes.ListByUser(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list votes", "username", username, "error", err)
		return nil, err
	}
	return votes, nil
}

func (s *VoteService) cast(
	ctx context.Context,
	operation string,
	username string,
	ideaID int64,
	direction models.Direction,
) (*models.VoteDB, *models.IdeaDB, error) {
	var (
		vote *models.VoteDB
		idea *models.IdeaDB
	)

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		idea, err = s.lockIdea(ctx, ideaID)
		if err != nil {
			return err
		}
		if idea.Username == username {
			return ErrSelfVote
		}

		standing, err := s.votes.GetByUserAndIdea(ctx, username, ideaID)
		if err != nil {
			return fmt.Errorf("get standing vote: %w", err)
		}

		// The duplicate check comes before any mutation.
		if standing != nil && standing.Direction == direction {
			return ErrDuplicateVote
		}

		if standing != nil && standing.Direction == direction.Opposite() {
			if err := s.votes.Delete(ctx, standing.ID); err != nil {
				return fmt.Errorf("delete opposite vote: %w", err)
			}
			if _, err := s.decrement(ctx, ideaID, standing.Direction); err != nil {
				return err
			}
		}

		vote, err = s.votes.Save(ctx, username, ideaID, direction)
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return ErrDuplicateVote
		}
		if err != nil {
			return fmt.Errorf("save vote: %w", err)
		}

		idea, err = s.increment(ctx, ideaID, direction)
		return err
	})

	observeVoteOperation(operation, err)
	if err != nil {
		logVoteError(operation, username, ideaID, err)
		return nil, nil, err
	}

	s.publishVoteEvent(ctx, operation, username, direction, idea)
	return vote, idea, nil
}

func (s *VoteService) retract(
	ctx context.Context,
	operation string,
	username string,
	ideaID int64,
	direction models.Direction,
) (*models.VoteDB, *models.IdeaDB, error) {
	var (
		vote *models.VoteDB
		idea *models.IdeaDB
	)

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.lockIdea(ctx, ideaID); err != nil {
			return err
		}

		var err error
		vote, err = s.votes.GetByUserAndIdea(ctx, username, ideaID)
		if err != nil {
			return fmt.Errorf("get standing vote: %w", err)
		}
		if vote == nil || vote.Direction != direction {
			return ErrVoteNotFound
		}

		idea, err = s.decrement(ctx, ideaID, direction)
		if err != nil {
			return err
		}

		if err := s.votes.Delete(ctx, vote.ID); err != nil {
			return fmt.Errorf("delete vote: %w", err)
		}
		return nil
	})

	observeVoteOperation(operation, err)
	if err != nil {
		logVoteError(operation, username, ideaID, err)
		return nil, nil, err
	}

	s.publishVoteEvent(ctx, operation, username, direction, idea)
	return vote, idea, nil
}

func (s *VoteService) lockIdea(ctx context.Context, ideaID int64) (*models.IdeaDB, error) {
	idea, err := s.ideas.LockByID(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("lock idea: %w", err)
	}
	if idea == nil {
		return nil, ErrIdeaNotFound
	}
	return idea, nil
}

func (s *VoteService) increment(ctx context.Context, ideaID int64, direction models.Direction) (*models.IdeaDB, error) {
	var (
		idea *models.IdeaDB
		err  error
	)
	if direction == models.Up {
		idea, err = s.ideas.IncrementUp(ctx, ideaID)
	} else {
		idea, err = s.ideas.IncrementDown(ctx, ideaID)
	}
	if err != nil {
		return nil, fmt.Errorf("increment %s votes: %w", direction, err)
	}
	return idea, nil
}

func (s *VoteService) decrement(ctx context.Context, ideaID int64, direction models.Direction) (*models.IdeaDB, error) {
	var (
		idea *models.IdeaDB
		err  error
	)
	if direction == models.Up {
		idea, err = s.ideas.DecrementUp(ctx, ideaID)
	} else {
		idea, err = s.ideas.DecrementDown(ctx, ideaID)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCounterUnderflow
	}
	if err != nil {
		return nil, fmt.Errorf("decrement %s votes: %w", direction, err)
	}
	return idea, nil
}

func logVoteError(operation, username string, ideaID int64, err error) {
	switch {
	case errors.Is(err, ErrDuplicateVote),
		errors.Is(err, ErrVoteNotFound),
		errors.Is(err, ErrIdeaNotFound),
		errors.Is(err, ErrSelfVote):
		logger.Log.Warnw("vote rejected", "operation", operation, "username", username, "ideaID", ideaID, "error", err)
	default:
		logger.Log.Errorw("vote failed", "operation", operation, "username", username, "ideaID", ideaID, "error", err)
	}
}
