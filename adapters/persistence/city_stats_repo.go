package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tradehub-app/tradehub/internal/domain/stats"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

// cityViewsKey is the sorted set the worker feeds; scores are view counts.
const cityViewsKey = "tradehub:city_views"

type redisCityStatsRepo struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisCityStatsRepo(rdb *redis.Client, log logger.Logger) stats.Repository {
	return &redisCityStatsRepo{rdb: rdb, logger: log}
}

func (r *redisCityStatsRepo) IncrementCityViews(ctx context.Context, city string) error {
	if city == "" {
		return nil
	}
	if err := r.rdb.ZIncrBy(ctx, cityViewsKey, 1, city).Err(); err != nil {
		return fmt.Errorf("failed to increment city views: %w", err)
	}
	return nil
}

func (r *redisCityStatsRepo) TopCities(ctx context.Context, limit int) ([]stats.CityCount, error) {
	members, err := r.rdb.ZRevRangeWithScores(ctx, cityViewsKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read top cities: %w", err)
	}

	cities := make([]stats.CityCount, 0, len(members))
	for _, m := range members {
		city, ok := m.Member.(string)
		if !ok {
			continue
		}
		cities = append(cities, stats.CityCount{City: city, Count: int64(m.Score)})
	}
	return cities, nil
}
