package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/hivemind/internal/logger"
	"github.com/sbilibin2017/hivemind/internal/models"
)

//go:generate mockgen -source=comment.go -destination=comment_mock_test.go -package=services

var ErrCommentNotFound = errors.New("comment not found")

// CommentStore defines comment persistence.
type CommentStore interface {
	Save(ctx context.Context, ideaID int64, username, body string) (*models.CommentDB, error)
	GetByID(ctx context.Context, id int64) (*models.CommentDB, error)
	Update(ctx context.Context, id int64, body string) (*models.CommentDB, error)
	Delete(ctx context.Context, id int64) (*models.CommentDB, error)
	ListByIdea(ctx context.Context, ideaID int64) ([]models.CommentDB, error)
}

// IdeaGetter looks up a single idea. Returns nil when it does not exist.
type IdeaGetter interface {
	GetByID(ctx context.Context, id int64) (*models.IdeaDB, error)
}

type CommentService struct {
	store CommentStore
	ideas IdeaGetter
}

func NewCommentService(store CommentStore, ideas IdeaGetter) *CommentService {
	return &CommentService{store: store, ideas: ideas}
}

// ListByIdea returns the comments of an idea.
func (s *CommentService) ListByIdea(ctx context.Context, ideaID int64) ([]models.CommentDB, error) {
	if err := s.ensureIdea(ctx, ideaID); err != nil {
		return nil, err
	}
	comments, err := s.store.ListByIdea(ctx, ideaID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "ideaID", ideaID, "error", err)
		return nil, err
	}
	return comments, nil
}

// Create adds a comment of username to an idea.
func (s *CommentService) Create(ctx context.Context, username string, ideaID int64, body string) (*models.CommentDB, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrInvalidInput
	}
	if err := s.ensureIdea(ctx, ideaID); err != nil {
		return nil, err
	}

	comment, err := s.store.Save(ctx, ideaID, username, body)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "ideaID", ideaID, "username", username, "error", err)
		return nil, err
	}
	return comment, nil
}

// Update replaces the text of a comment.
func (s *CommentService) Update(ctx context.Context, id int64, body string) (*models.CommentDB, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrInvalidInput
	}

	comment, err := s.store.Update(ctx, id, body)
	if err != nil {
		logger.Log.Errorw("failed to update comment", "commentID", id, "error", err)
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

// Delete removes a comment.
func (s *CommentService) Delete(ctx context.Context, id int64) (*models.CommentDB, error) {
	comment, err := s.store.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete comment", "commentID", id, "error", err)
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

func (s *CommentService) ensureIdea(ctx context.Context, ideaID int64) error {
	idea, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		logger.Log.Errorw("failed to get idea", "ideaID", ideaID, "error", err)
		return err
	}
	if idea == nil {
		return ErrIdeaNotFound
	}
	return nil
}
