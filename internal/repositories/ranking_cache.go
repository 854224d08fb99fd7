package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/hivemind/internal/logger"
	"github.com/sbilibin2017/hivemind/internal/models"
)

// ErrCacheMiss is returned when a ranking page is not cached.
var ErrCacheMiss = errors.New("ranking page not found in cache")

// RankingCacheRepository caches ranking pages in Redis
type RankingCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pages
}

// NewRankingCacheRepository creates a new repository instance with the given TTL
func NewRankingCacheRepository(client *redis.Client, expiration time.Duration) *RankingCacheRepository {
	return &RankingCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rankingKey(kind string, page int) string {
	return fmt.Sprintf("ideas:%s:page:%d", kind, page)
}

// GetRanking returns a cached ranking page or ErrCacheMiss.
func (r *RankingCacheRepository) GetRanking(ctx context.Context, kind string, page int) ([]models.RankedIdeaDB, error) {
	key := rankingKey(kind, page)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("ranking cache get",
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var ideas []models.RankedIdeaDB
	err = json.Unmarshal(val, &ideas)

	logger.Log.Infow("ranking cache get",
		"key", key,
		"result", len(ideas),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return ideas, nil
}

// SetRanking caches a ranking page with expiration
func (r *RankingCacheRepository) SetRanking(ctx context.Context, kind string, page int, ideas []models.RankedIdeaDB) error {
	key := rankingKey(kind, page)

	data, err := json.Marshal(ideas)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("ranking cache set",
		"key", key,
		"result", len(ideas),
		"error", err,
	)

	return err
}
