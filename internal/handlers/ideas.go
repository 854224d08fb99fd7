package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/hivemind/internal/models"
	"github.com/sbilibin2017/hivemind/internal/render"
)

//go:generate mockgen -source=ideas.go -destination=ideas_mock_test.go -package=handlers

// IdeaCreator creates ideas.
type IdeaCreator interface {
	Create(ctx context.Context, username, title, body string) (*models.IdeaDB, error)
}

// IdeaReader reads a single idea.
type IdeaReader interface {
	Get(ctx context.Context, id int64) (*models.IdeaDB, error)
}

// IdeaUpdater updates ideas.
type IdeaUpdater interface {
	Update(ctx context.Context, id int64, title, body string) (*models.IdeaDB, error)
}

// IdeaDeleter deletes ideas.
type IdeaDeleter interface {
	Delete(ctx context.Context, id int64) (*models.IdeaDB, error)
}

// IdeaRequest represents the JSON body for creating or updating an idea
// swagger:model IdeaRequest
type IdeaRequest struct {
	// Title
	// required: true
	// default: Flying cars
	Title string `json:"title"`

	// Body in Markdown
	// required: true
	// default: We **need** them.
	Body string `json:"body"`
}

// IdeaResponse is an idea with its body rendered to HTML
// swagger:model IdeaResponse
type IdeaResponse struct {
	models.IdeaDB

	// Sanitized HTML rendering of the body
	BodyHTML string `json:"body_html"`
}

func newIdeaResponse(idea models.IdeaDB) IdeaResponse {
	return IdeaResponse{IdeaDB: idea, BodyHTML: render.Markdown(idea.Body)}
}

// NewCreateIdeaHandler returns an HTTP handler that posts a new idea.
// @Summary Create idea
// @Description Creates an idea owned by the caller. Vote counters start at zero.
// @Tags ideas
// @Accept json
// @Produce json
// @Param request body handlers.IdeaRequest true "Idea"
// @Success 201 {object} handlers.IdeaResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /ideas [post]
// @Security BearerAuth
func NewCreateIdeaHandler(svc IdeaCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := currentUser(w, r, tokener)
		if !ok {
			return
		}

		var req IdeaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		idea, err := svc.Create(r.Context(), username, req.Title, req.Body)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newIdeaResponse(*idea))
	}
}

// NewGetIdeaHandler returns an HTTP handler that reads an idea.
// @Summary Get idea
// @Tags ideas
// @Produce json
// @Param id path int true "Idea ID"
// @Success 200 {object} handlers.IdeaResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Idea not found"
// @Router /ideas/{id} [get]
// @Security BearerAuth
func NewGetIdeaHandler(svc IdeaReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		idea, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newIdeaResponse(*idea))
	}
}

// NewUpdateIdeaHandler returns an HTTP handler that edits an idea.
// @Summary Update idea
// @Description Replaces title and body. Only the owner may update an idea.
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path int true "Idea ID"
// @Param request body handlers.IdeaRequest true "Idea"
// @Success 200 {object} handlers.IdeaResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Idea not found"
// @Router /ideas/{id} [put]
// @Security BearerAuth
func NewUpdateIdeaHandler(svc IdeaUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req IdeaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		idea, err := svc.Update(r.Context(), id, req.Title, req.Body)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newIdeaResponse(*idea))
	}
}

// NewDeleteIdeaHandler returns an HTTP handler that removes an idea with its votes and comments.
// @Summary Delete idea
// @Tags ideas
// @Produce json
// @Param id path int true "Idea ID"
// @Success 200 {object} handlers.IdeaResponse "Deleted idea"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Idea not found"
// @Router /ideas/{id} [delete]
// @Security BearerAuth
func NewDeleteIdeaHandler(svc IdeaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		idea, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newIdeaResponse(*idea))
	}
}
