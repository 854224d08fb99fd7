package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/hivemind/internal/logger"
	"github.com/sbilibin2017/hivemind/internal/models"
)

//go:generate mockgen -source=idea.go -destination=idea_mock_test.go -package=services

// Ranking kinds, also used as cache key segments.
const (
	RankingControversial = "controversial"
	RankingUnpopular     = "unpopular"
	RankingMainstream    = "mainstream"
)

// IdeaStore defines idea persistence and ranking queries.
type IdeaStore interface {
	Save(ctx context.Context, title, body, username string) (*models.IdeaDB, error)
	GetByID(ctx context.Context, id int64) (*models.IdeaDB, error)
	Update(ctx context.Context, id int64, title, body string) (*models.IdeaDB, error)
	Delete(ctx context.Context, id int64) (*models.IdeaDB, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, page int) ([]models.IdeaDB, error)
	CountControversial(ctx context.Context) (int64, error)
	Controversial(ctx context.Context, page int) ([]models.RankedIdeaDB, error)
	CountUnpopularMainstream(ctx context.Context) (int64, error)
	Unpopular(ctx context.Context, page int) ([]models.RankedIdeaDB, error)
	Mainstream(ctx context.Context, page int) ([]models.RankedIdeaDB, error)
}

// RankingCache caches ranking pages.
type RankingCache interface {
	GetRanking(ctx context.Context, kind string, page int) ([]models.RankedIdeaDB, error)
	SetRanking(ctx context.Context, kind string, page int, ideas []models.RankedIdeaDB) error
}

// IdeaService handles idea CRUD and rankings.
// Vote counters are never written here; see VoteService.
type IdeaService struct {
	store IdeaStore
	cache RankingCache
}

// NewIdeaService creates a new IdeaService. cache may be nil.
func NewIdeaService(store IdeaStore, cache RankingCache) *IdeaService {
	return &IdeaService{store: store, cache: cache}
}

// Create stores a new idea owned by username.
func (s *IdeaService) Create(ctx context.Context, username, title, body string) (*models.IdeaDB, error) {
	title, body, err := normalizeIdea(title, body)
	if err != nil {
		return nil, err
	}

	idea, err := s.store.Save(ctx, title, body, username)
	if err != nil {
		logger.Log.Errorw("failed to save idea", "username", username, "error", err)
		return nil, err
	}
	return idea, nil
}

// Get returns an idea by id.
func (s *IdeaService) Get(ctx context.Context, id int64) (*models.IdeaDB, error) {
	idea, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get idea", "ideaID", id, "error", err)
		return nil, err
	}
	if idea == nil {
		return nil, ErrIdeaNotFound
	}
	return idea, nil
}

// Update replaces title and body of an idea.
func (s *IdeaService) Update(ctx context.Context, id int64, title, body string) (*models.IdeaDB, error) {
	title, body, err := normalizeIdea(title, body)
	if err != nil {
		return nil, err
	}

	idea, err := s.store.Update(ctx, id, title, body)
	if err != nil {
		logger.Log.Errorw("failed to update idea", "ideaID", id, "error", err)
		return nil, err
	}
	if idea == nil {
		return nil, ErrIdeaNotFound
	}
	return idea, nil
}

// Delete removes an idea together with its votes and comments.
func (s *IdeaService) Delete(ctx context.Context, id int64) (*models.IdeaDB, error) {
	idea, err := s.store.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete idea", "ideaID", id, "error", err)
		return nil, err
	}
	if idea == nil {
		return nil, ErrIdeaNotFound
	}
	return idea, nil
}

// Count returns the number of ideas.
func (s *IdeaService) Count(ctx context.Context) (int64, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count ideas", "error", err)
	}
	return n, err
}

// List returns a page of ideas, newest first.
func (s *IdeaService) List(ctx context.Context, page int) ([]models.IdeaDB, error) {
	if page < 1 {
		return nil, ErrInvalidInput
	}
	ideas, err := s.store.List(ctx, page)
	if err != nil {
		logger.Log.Errorw("failed to list ideas", "page", page, "error", err)
		return nil, err
	}
	return ideas, nil
}

// CountControversial counts controversial ideas.
func (s *IdeaService) CountControversial(ctx context.Context) (int64, error) {
	n, err := s.store.CountControversial(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count controversial ideas", "error", err)
	}
	return n, err
}

// CountUnpopularMainstream counts ideas voted in the ranking window.
func (s *IdeaService) CountUnpopularMainstream(ctx context.Context) (int64, error) {
	n, err := s.store.CountUnpopularMainstream(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count unpopular/mainstream ideas", "error", err)
	}
	return n, err
}

// Controversial returns a page of recent ideas with a balanced vote count.
func (s *IdeaService) Controversial(ctx context.Context, page int) ([]models.RankedIdeaDB, error) {
	return s.ranking(ctx, RankingControversial, page, s.store.Controversial)
}

// Unpopular returns a page of recently voted ideas, lowest vote sum first.
func (s *IdeaService) Unpopular(ctx context.Context, page int) ([]models.RankedIdeaDB, error) {
	return s.ranking(ctx, RankingUnpopular, page, s.store.Unpopular)
}

// Mainstream returns a page of recently voted ideas, highest vote sum first.
func (s *IdeaService) Mainstream(ctx context.Context, page int) ([]models.RankedIdeaDB, error) {
	return s.ranking(ctx, RankingMainstream, page, s.store.Mainstream)
}

func (s *IdeaService) ranking(
	ctx context.Context,
	kind string,
	page int,
	load func(ctx context.Context, page int) ([]models.RankedIdeaDB, error),
) ([]models.RankedIdeaDB, error) {
	if page < 1 {
		return nil, ErrInvalidInput
	}

	if s.cache != nil {
		ideas, err := s.cache.GetRanking(ctx, kind, page)
		if err == nil {
			return ideas, nil
		}
		logger.Log.Debugw("ranking cache miss", "kind", kind, "page", page, "error", err)
	}

	ideas, err := load(ctx, page)
	if err != nil {
		logger.Log.Errorw("failed to load ranking", "kind", kind, "page", page, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRanking(ctx, kind, page, ideas); err != nil {
			logger.Log.Errorw("failed to cache ranking", "kind", kind, "page", page, "error", err)
		}
	}

	return ideas, nil
}

func normalizeIdea(title, body string) (string, string, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return "", "", ErrInvalidInput
	}
	return title, body, nil
}
