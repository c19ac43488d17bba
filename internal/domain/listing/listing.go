package listing

import (
	"context"
	"time"
)

// PageSize is the fixed cap every discovery query carries.
const PageSize = 20

type Listing struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	City      *string   `json:"city"`
	Tags      *string   `json:"tags"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Row is the minimal projection the discovery queries select. City and Tags
// stay nullable; decoding beyond this shape happens in the view projection.
type Row struct {
	ID    int64
	Title string
	City  *string
	Tags  *string
}

// Valid reports whether the row carries the mandatory columns. Rows failing
// this check are skipped by the projector, not fatal to the batch.
func (r Row) Valid() bool {
	return r.ID > 0 && r.Title != ""
}

// Repository is the store-side collaborator. Every query it runs is
// constrained to active listings, ordered, and capped at PageSize.
type Repository interface {
	// ListActive returns active listings newest-first. A non-empty city
	// restricts results to cities equal to or prefixed by it.
	ListActive(ctx context.Context, city string) ([]Row, error)

	// SearchActive runs a full-text match with the already-sanitized query
	// text, best match first. The city restriction works as in ListActive.
	SearchActive(ctx context.Context, query, city string) ([]Row, error)
}
