package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/hivemind/internal/models"
	"github.com/sbilibin2017/hivemind/internal/render"
)

//go:generate mockgen -source=comments.go -destination=comments_mock_test.go -package=handlers

// CommentLister lists the comments of an idea.
type CommentLister interface {
	ListByIdea(ctx context.Context, ideaID int64) ([]models.CommentDB, error)
}

// CommentCreator adds comments.
type CommentCreator interface {
	Create(ctx context.Context, username string, ideaID int64, body string) (*models.CommentDB, error)
}

// CommentUpdater edits comments.
type CommentUpdater interface {
	Update(ctx context.Context, id int64, body string) (*models.CommentDB, error)
}

// CommentDeleter removes comments.
type CommentDeleter interface {
	Delete(ctx context.Context, id int64) (*models.CommentDB, error)
}

// CommentRequest represents the JSON body for creating or editing a comment
// swagger:model CommentRequest
type CommentRequest struct {
	// Comment text in Markdown
	// required: true
	// default: Great idea!
	Body string `json:"body"`
}

// CommentResponse is a comment with its text rendered to HTML
// swagger:model CommentResponse
type CommentResponse struct {
	models.CommentDB

	// Sanitized HTML rendering of the body
	BodyHTML string `json:"body_html"`
}

func newCommentResponse(c models.CommentDB) CommentResponse {
	return CommentResponse{CommentDB: c, BodyHTML: render.Markdown(c.Body)}
}

// NewListCommentsHandler returns an HTTP handler listing the comments of an idea.
// @Summary List comments
// @Tags comments
// @Produce json
// @Param id path int true "Idea ID"
// @Success 200 {array} handlers.CommentResponse
// @Failure 404 {object} handlers.ErrorResponse "Idea not found"
// @Router /ideas/{id}/comments [get]
// @Security BearerAuth
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ideaID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		comments, err := svc.ListByIdea(r.Context(), ideaID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]CommentResponse, 0, len(comments))
		for _, c := range comments {
			resp = append(resp, newCommentResponse(c))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateCommentHandler returns an HTTP handler adding a comment to an idea.
// @Summary Add comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Idea ID"
// @Param request body handlers.CommentRequest true "Comment"
// @Success 201 {object} handlers.CommentResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Idea not found"
// @Router /ideas/{id}/comments [post]
// @Security BearerAuth
func NewCreateCommentHandler(svc CommentCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}
		ideaID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		comment, err := svc.Create(r.Context(), username, ideaID, req.Body)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newCommentResponse(*comment))
	}
}

// NewUpdateCommentHandler returns an HTTP handler editing a comment.
// @Summary Edit comment
// @Description Only the author may edit a comment.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body handlers.CommentRequest true "Comment"
// @Success 200 {object} handlers.CommentResponse
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Comment not found"
// @Router /comments/{id} [put]
// @Security BearerAuth
func NewUpdateCommentHandler(svc CommentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		comment, err := svc.Update(r.Context(), id, req.Body)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newCommentResponse(*comment))
	}
}

// NewDeleteCommentHandler returns an HTTP handler removing a comment.
// @Summary Delete comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} handlers.CommentResponse "Deleted comment"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Comment not found"
// @Router /comments/{id} [delete]
// @Security BearerAuth
func NewDeleteCommentHandler(svc CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		comment, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newCommentResponse(*comment))
	}
}
