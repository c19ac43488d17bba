package stats

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventSearch     EventKind = "search"
	EventCityFilter EventKind = "city_filter"
)

// DiscoveryEvent is published whenever a search or city filter actually hits
// the store. Short-circuited requests (empty query, empty city) emit nothing.
type DiscoveryEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Kind       EventKind `json:"kind"`
	Query      string    `json:"query,omitempty"`
	City       string    `json:"city,omitempty"`
	Results    int       `json:"results"`
	OccurredAt time.Time `json:"occurred_at"`
}

type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// Publisher emits discovery events. Publishing is fire-and-forget from the
// caller's perspective: failures are logged, never surfaced to the request.
type Publisher interface {
	PublishDiscoveryEvent(ctx context.Context, event DiscoveryEvent) error
}

// Repository holds the city popularity counters fed by the worker.
type Repository interface {
	IncrementCityViews(ctx context.Context, city string) error
	TopCities(ctx context.Context, limit int) ([]CityCount, error)
}
