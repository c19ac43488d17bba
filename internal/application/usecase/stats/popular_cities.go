package stats

import (
	"context"

	"github.com/tradehub-app/tradehub/internal/domain/stats"
	"github.com/tradehub-app/tradehub/pkg/apperror"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

const defaultTopCities = 5

type PopularCitiesUseCase struct {
	statsRepo stats.Repository
	logger    logger.Logger
}

func NewPopularCitiesUseCase(repo stats.Repository, log logger.Logger) *PopularCitiesUseCase {
	return &PopularCitiesUseCase{
		statsRepo: repo,
		logger:    log,
	}
}

// Execute returns the most-filtered cities, best first. The counters are fed
// asynchronously by the worker; listings themselves are never cached here.
func (uc *PopularCitiesUseCase) Execute(ctx context.Context, limit int) ([]stats.CityCount, error) {
	if limit <= 0 || limit > 20 {
		limit = defaultTopCities
	}

	cities, err := uc.statsRepo.TopCities(ctx, limit)
	if err != nil {
		uc.logger.Error("failed to read popular cities", err)
		return nil, apperror.NewStoreUnavailable("popular cities query failed", err)
	}
	return cities, nil
}
