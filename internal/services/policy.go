package services

import (
	"context"

	"github.com/sbilibin2017/hivemind/internal/logger"
	"github.com/sbilibin2017/hivemind/internal/models"
)

//go:generate mockgen -source=policy.go -destination=policy_mock_test.go -package=services

// VoteGetter looks up the standing vote of a user on an idea.
type VoteGetter interface {
	GetByUserAndIdea(ctx context.Context, username string, ideaID int64) (*models.VoteDB, error)
}

// CommentGetter looks up a single comment. Returns nil when it does not exist.
type CommentGetter interface {
	GetByID(ctx context.Context, id int64) (*models.CommentDB, error)
}

// PolicyService answers access questions for the HTTP layer.
// A missing resource yields false, never an error.
type PolicyService struct {
	ideas    IdeaGetter
	votes    VoteGetter
	comments CommentGetter
}

func NewPolicyService(ideas IdeaGetter, votes VoteGetter, comments CommentGetter) *PolicyService {
	return &PolicyService{ideas: ideas, votes: votes, comments: comments}
}

// CanUserVoteIdea reports whether the idea exists and is owned by someone else.
func (p *PolicyService) CanUserVoteIdea(ctx context.Context, username string, ideaID int64) (bool, error) {
	idea, err := p.ideas.GetByID(ctx, ideaID)
	if err != nil {
		logger.Log.Errorw("policy: failed to get idea", "ideaID", ideaID, "error", err)
		return false, err
	}
	return idea != nil && idea.Username != username, nil
}

// CanUserModifyVote reports whether the user holds a standing vote on the idea.
func (p *PolicyService) CanUserModifyVote(ctx context.Context, username string, ideaID int64) (bool, error) {
	vote, err := p.votes.GetByUserAndIdea(ctx, username, ideaID)
	if err != nil {
		logger.Log.Errorw("policy: failed to get vote", "ideaID", ideaID, "username", username, "error", err)
		return false, err
	}
	return vote != nil, nil
}

// CanUserModifyIdea reports whether the idea exists and belongs to the user.
func (p *PolicyService) CanUserModifyIdea(ctx context.Context, username string, ideaID int64) (bool, error) {
	idea, err := p.ideas.GetByID(ctx, ideaID)
	if err != nil {
		logger.Log.Errorw("policy: failed to get idea", "ideaID", ideaID, "error", err)
		return false, err
	}
	return idea != nil && idea.Username == username, nil
}

// CanUserModifyComment reports whether the comment exists and belongs to the user.
func (p *PolicyService) CanUserModifyComment(ctx context.Context, username string, commentID int64) (bool, error) {
	comment, err := p.comments.GetByID(ctx, commentID)
	if err != nil {
		logger.Log.Errorw("policy: failed to get comment", "commentID", commentID, "error", err)
		return false, err
	}
	return comment != nil && comment.Username == username, nil
}
