package domain

import (
	"context"
	"time"
)

// PlacesClient is the outbound port to the places/review backend. Every
// call is one HTTP round trip; implementations hold no mutable state and
// are safe to use from overlapping goroutines.
type PlacesClient interface {
	SearchByCoordinate(ctx context.Context, lon, lat float64) ([]LitePoi, error)
	SearchByText(ctx context.Context, query string) ([]LitePoi, error)
	GetPlace(ctx context.Context, fsaID string) (Poi, error)
	GetPlaceForPoi(ctx context.Context, p LitePoi) (Poi, error)
	CreateReviewRequest(ctx context.Context, fsaID string, rating int, subject string) (ReviewRequestResponse, error)
	ListReviews(ctx context.Context, fsaID string) (ReviewListResponse, error)
	GetReviewStats(ctx context.Context, fsaID string) (ReviewStatsResponse, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// SearchHistory records executed searches for the terminal client.
type SearchHistory interface {
	RecordSearch(ctx context.Context, query string, resultCount int) error
	RecentSearches(ctx context.Context, limit int) ([]SearchRecord, error)
}

type SearchRecord struct {
	ID          int64
	Query       string
	ResultCount int
	RunAt       time.Time
}
