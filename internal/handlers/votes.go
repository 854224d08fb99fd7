package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/hivemind/internal/models"
)

//go:generate mockgen -source=votes.go -destination=votes_mock_test.go -package=handlers

// Voter casts and retracts votes.
type Voter interface {
	CastUpvote(ctx context.Context, username string, ideaID int64) (*models.VoteDB, *models.IdeaDB, error)
	CastDownvote(ctx context.Context, username string, ideaID int64) (*models.VoteDB, *models.IdeaDB, error)
	RetractUpvote(ctx context.Context, username string, ideaID int64) (*models.VoteDB, *models.IdeaDB, error)
	RetractDownvote(ctx context.Context, username string, ideaID int64) (*models.VoteDB, *models.IdeaDB, error)
}

// VoteLister lists the votes of a user.
type VoteLister interface {
	ListByUser(ctx context.Context, username string) ([]models.VoteDB, error)
}

// VoteResponse carries the affected vote and the idea counters after the operation
// swagger:model VoteResponse
type VoteResponse struct {
	// Cast or retracted vote
	Vote models.VoteDB `json:"vote"`

	// Idea with updated counters
	Idea models.IdeaDB `json:"idea"`
}

type voteOperation func(ctx context.Context, username string, ideaID int64) (*models.VoteDB, *models.IdeaDB, error)

func newVoteHandler(op voteOperation, tokener Tokener, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}
		ideaID, ok := pathID(w, r, "ideaId")
		if !ok {
			return
		}

		vote, idea, err := op(r.Context(), username, ideaID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, status, VoteResponse{Vote: *vote, Idea: *idea})
	}
}

// NewUpvoteHandler returns an HTTP handler casting an upvote.
// @Summary Upvote idea
// @Description Casts an upvote. A standing downvote of the caller is replaced.
// @Tags votes
// @Produce json
// @Param ideaId path int true "Idea ID"
// @Success 201 {object} handlers.VoteResponse
// @Failure 403 {object} handlers.ErrorResponse "Own idea"
// @Failure 404 {object} handlers.ErrorResponse "Idea not found"
// @Failure 409 {object} handlers.ErrorResponse "Already upvoted"
// @Router /upVotes/{ideaId} [post]
// @Security BearerAuth
func NewUpvoteHandler(svc Voter, tokener Tokener) http.HandlerFunc {
	return newVoteHandler(svc.CastUpvote, tokener, http.StatusCreated)
}

// NewDownvoteHandler returns an HTTP handler casting a downvote.
// @Summary Downvote idea
// @Description Casts a downvote. A standing upvote of the caller is replaced.
// @Tags votes
// @Produce json
// @Param ideaId path int true "Idea ID"
// @Success 201 {object} handlers.VoteResponse
// @Failure 403 {object} handlers.ErrorResponse "Own idea"
// @Failure 404 {object} handlers.ErrorResponse "Idea not found"
// @Failure 409 {object} handlers.ErrorResponse "Already downvoted"
// @Router /downVotes/{ideaId} [post]
// @Security BearerAuth
func NewDownvoteHandler(svc Voter, tokener Tokener) http.HandlerFunc {
	return newVoteHandler(svc.CastDownvote, tokener, http.StatusCreated)
}

// NewRetractUpvoteHandler returns an HTTP handler retracting an upvote.
// @Summary Retract upvote
// @Tags votes
// @Produce json
// @Param ideaId path int true "Idea ID"
// @Success 200 {object} handlers.VoteResponse
// @Failure 403 {object} handlers.ErrorResponse "No vote to modify"
// @Failure 404 {object} handlers.ErrorResponse "Vote not found"
// @Router /upVotes/{ideaId} [delete]
// @Security BearerAuth
func NewRetractUpvoteHandler(svc Voter, tokener Tokener) http.HandlerFunc {
	return newVoteHandler(svc.RetractUpvote, tokener, http.StatusOK)
}

// NewRetractDownvoteHandler returns an HTTP handler retracting a downvote.
// @Summary Retract downvote
// @Tags votes
// @Produce json
// @Param ideaId path int true "Idea ID"
// @Success 200 {object} handlers.VoteResponse
// @Failure 403 {object} handlers.ErrorResponse "No vote to modify"
// @Failure 404 {object} handlers.ErrorResponse "Vote not found"
// @Router /downVotes/{ideaId} [delete]
// @Security BearerAuth
func NewRetractDownvoteHandler(svc Voter, tokener Tokener) http.HandlerFunc {
	return newVoteHandler(svc.RetractDownvote, tokener, http.StatusOK)
}

// NewListVotesHandler returns an HTTP handler listing the caller's votes.
// @Summary My votes
// @Tags votes
// @Produce json
// @Success 200 {array} models.VoteDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /votes [get]
// @Security BearerAuth
func NewListVotesHandler(svc VoteLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}

		votes, err := svc.ListByUser(r.Context(), username)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if votes == nil {
			votes = []models.VoteDB{}
		}
		writeJSON(w, http.StatusOK, votes)
	}
}
