package discovery

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradehub-app/tradehub/internal/domain/listing"
	"github.com/tradehub-app/tradehub/internal/domain/stats"
	"github.com/tradehub-app/tradehub/pkg/apperror"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

const defaultQueryTimeout = 5 * time.Second

// DiscoveryUseCase orchestrates the listing discovery pipeline: sanitize,
// compose the right query shape, execute, project rows into view items.
// It holds no cross-request state; every call is a single read cycle.
type DiscoveryUseCase struct {
	listingRepo  listing.Repository
	publisher    stats.Publisher
	logger       logger.Logger
	queryTimeout time.Duration
}

func NewDiscoveryUseCase(repo listing.Repository, pub stats.Publisher, log logger.Logger, queryTimeout time.Duration) *DiscoveryUseCase {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &DiscoveryUseCase{
		listingRepo:  repo,
		publisher:    pub,
		logger:       log,
		queryTimeout: queryTimeout,
	}
}

// Browse returns active listings newest-first. A city filter that is empty
// or whitespace-only is treated as absent, falling back to the unfiltered
// scan.
func (uc *DiscoveryUseCase) Browse(ctx context.Context, cityFilter string) ([]listing.ViewItem, error) {
	city := presentCity(cityFilter)

	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	rows, err := uc.listingRepo.ListActive(ctx, city)
	if err != nil {
		uc.logger.Error("failed to fetch listings", err, zap.String("city", city))
		return nil, apperror.NewStoreUnavailable("browse query failed", err)
	}
	return uc.project(rows), nil
}

// Search runs a full-text match against the sanitized query text. A query
// that trims to empty returns an empty sequence without touching the store.
func (uc *DiscoveryUseCase) Search(ctx context.Context, queryText, cityFilter string) ([]listing.ViewItem, error) {
	if strings.TrimSpace(queryText) == "" {
		return []listing.ViewItem{}, nil
	}

	cleaned := SanitizeQuery(strings.TrimSpace(queryText))
	city := presentCity(cityFilter)

	qctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	rows, err := uc.listingRepo.SearchActive(qctx, cleaned, city)
	if err != nil {
		uc.logger.Error("failed to search listings", err, zap.String("query", cleaned), zap.String("city", city))
		return nil, apperror.NewStoreUnavailable("search query failed", err)
	}

	items := uc.project(rows)
	uc.publish(ctx, stats.DiscoveryEvent{
		Kind:    stats.EventSearch,
		Query:   cleaned,
		City:    city,
		Results: len(items),
	})
	return items, nil
}

// FilterByCity behaves like the by-city browse, except an absent city yields
// an empty sequence instead of falling back to unfiltered results.
func (uc *DiscoveryUseCase) FilterByCity(ctx context.Context, cityFilter string) ([]listing.ViewItem, error) {
	city := presentCity(cityFilter)
	if city == "" {
		return []listing.ViewItem{}, nil
	}

	qctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	rows, err := uc.listingRepo.ListActive(qctx, city)
	if err != nil {
		uc.logger.Error("failed to fetch listings by city", err, zap.String("city", city))
		return nil, apperror.NewStoreUnavailable("city filter query failed", err)
	}

	items := uc.project(rows)
	uc.publish(ctx, stats.DiscoveryEvent{
		Kind:    stats.EventCityFilter,
		City:    city,
		Results: len(items),
	})
	return items, nil
}

// project turns decoded rows into view items. Rows missing mandatory fields
// are skipped with a warning; positions (and so scores) follow the surviving
// sequence.
func (uc *DiscoveryUseCase) project(rows []listing.Row) []listing.ViewItem {
	items := make([]listing.ViewItem, 0, len(rows))
	for _, row := range rows {
		if !row.Valid() {
			uc.logger.Warn("skipping malformed listing row", zap.Int64("id", row.ID))
			continue
		}
		items = append(items, listing.NewViewItem(row, len(items)))
	}
	return items
}

// publish is fire-and-forget: a broker failure is logged and never fails
// the request that triggered it.
func (uc *DiscoveryUseCase) publish(ctx context.Context, event stats.DiscoveryEvent) {
	if uc.publisher == nil {
		return
	}
	event.EventID = uuid.New()
	event.OccurredAt = time.Now().UTC()
	if err := uc.publisher.PublishDiscoveryEvent(ctx, event); err != nil {
		uc.logger.Warn("failed to publish discovery event", zap.Error(err), zap.String("kind", string(event.Kind)))
	}
}

// presentCity applies the uniform rule for optional city filters: a value
// that trims to empty is absent. Present values are passed through as-is.
func presentCity(cityFilter string) string {
	if strings.TrimSpace(cityFilter) == "" {
		return ""
	}
	return cityFilter
}
