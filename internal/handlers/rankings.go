package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/hivemind/internal/models"
)

//go:generate mockgen -source=rankings.go -destination=rankings_mock_test.go -package=handlers

// IdeaCounts counts ideas overall and per ranking.
type IdeaCounts interface {
	Count(ctx context.Context) (int64, error)
	CountControversial(ctx context.Context) (int64, error)
	CountUnpopularMainstream(ctx context.Context) (int64, error)
}

// IdeaLister pages through all ideas.
type IdeaLister interface {
	List(ctx context.Context, page int) ([]models.IdeaDB, error)
}

// IdeaRanker pages through the ranking views.
type IdeaRanker interface {
	Controversial(ctx context.Context, page int) ([]models.RankedIdeaDB, error)
	Unpopular(ctx context.Context, page int) ([]models.RankedIdeaDB, error)
	Mainstream(ctx context.Context, page int) ([]models.RankedIdeaDB, error)
}

// CountResponse carries a number of ideas
// swagger:model CountResponse
type CountResponse struct {
	// Number of ideas
	// default: 42
	Count int64 `json:"count"`
}

// RankedIdeaResponse is an idea with its ranking score
// swagger:model RankedIdeaResponse
type RankedIdeaResponse struct {
	IdeaResponse

	// Signed vote sum used for ordering
	Score int64 `json:"score"`
}

func newCountHandler(count func(ctx context.Context) (int64, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := count(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CountResponse{Count: n})
	}
}

func newRankingHandler(load func(ctx context.Context, page int) ([]models.RankedIdeaDB, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := pathPage(w, r)
		if !ok {
			return
		}

		ideas, err := load(r.Context(), page)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]RankedIdeaResponse, 0, len(ideas))
		for _, idea := range ideas {
			resp = append(resp, RankedIdeaResponse{IdeaResponse: newIdeaResponse(idea.IdeaDB), Score: idea.Score})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCountIdeasHandler returns an HTTP handler counting all ideas.
// @Summary Count ideas
// @Tags rankings
// @Produce json
// @Success 200 {object} handlers.CountResponse
// @Router /countIdeas [get]
// @Security BearerAuth
func NewCountIdeasHandler(svc IdeaCounts) http.HandlerFunc {
	return newCountHandler(svc.Count)
}

// NewCountControversialIdeasHandler returns an HTTP handler counting controversial ideas.
// @Summary Count controversial ideas
// @Tags rankings
// @Produce json
// @Success 200 {object} handlers.CountResponse
// @Router /countControversialIdeas [get]
// @Security BearerAuth
func NewCountControversialIdeasHandler(svc IdeaCounts) http.HandlerFunc {
	return newCountHandler(svc.CountControversial)
}

// NewCountUnpopularMainstreamIdeasHandler returns an HTTP handler counting ideas voted in the last 7 days.
// @Summary Count unpopular/mainstream ideas
// @Tags rankings
// @Produce json
// @Success 200 {object} handlers.CountResponse
// @Router /countUnpopularMainstreamIdeas [get]
// @Security BearerAuth
func NewCountUnpopularMainstreamIdeasHandler(svc IdeaCounts) http.HandlerFunc {
	return newCountHandler(svc.CountUnpopularMainstream)
}

// NewAllIdeasHandler returns an HTTP handler listing all ideas, newest first.
// @Summary List ideas
// @Tags rankings
// @Produce json
// @Param page path int true "1-indexed page"
// @Success 200 {array} handlers.IdeaResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid page"
// @Router /allIdeas/{page} [get]
// @Security BearerAuth
func NewAllIdeasHandler(svc IdeaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := pathPage(w, r)
		if !ok {
			return
		}

		ideas, err := svc.List(r.Context(), page)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]IdeaResponse, 0, len(ideas))
		for _, idea := range ideas {
			resp = append(resp, newIdeaResponse(idea))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewControversialIdeasHandler returns an HTTP handler listing recent ideas with balanced votes.
// @Summary Controversial ideas
// @Description Ideas created in the last 7 days whose up and down votes differ by at most 2, most voted first.
// @Tags rankings
// @Produce json
// @Param page path int true "1-indexed page"
// @Success 200 {array} handlers.RankedIdeaResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid page"
// @Router /controversialIdeas/{page} [get]
// @Security BearerAuth
func NewControversialIdeasHandler(svc IdeaRanker) http.HandlerFunc {
	return newRankingHandler(svc.Controversial)
}

// NewUnpopularIdeasHandler returns an HTTP handler listing recently voted ideas, lowest vote sum first.
// @Summary Unpopular ideas
// @Tags rankings
// @Produce json
// @Param page path int true "1-indexed page"
// @Success 200 {array} handlers.RankedIdeaResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid page"
// @Router /unpopularIdeas/{page} [get]
// @Security BearerAuth
func NewUnpopularIdeasHandler(svc IdeaRanker) http.HandlerFunc {
	return newRankingHandler(svc.Unpopular)
}

// NewMainstreamIdeasHandler returns an HTTP handler listing recently voted ideas, highest vote sum first.
// @Summary Mainstream ideas
// @Tags rankings
// @Produce json
// @Param page path int true "1-indexed page"
// @Success 200 {array} handlers.RankedIdeaResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid page"
// @Router /mainstreamIdeas/{page} [get]
// @Security BearerAuth
func NewMainstreamIdeasHandler(svc IdeaRanker) http.HandlerFunc {
	return newRankingHandler(svc.Mainstream)
}
