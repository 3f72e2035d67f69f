package app

import (
	"context"
	"fmt"
	"time"

	"foodfinder/internal/domain"
)

// QueryService answers the read paths that benefit from short-lived
// caching: place detail, review lists and review statistics. The client
// itself stays a pure mapper; caching lives here, and a nil cache turns
// the service into a straight pass-through.
type QueryService struct {
	client domain.PlacesClient
	cache  domain.Cache
	ttl    time.Duration
}

func NewQueryService(client domain.PlacesClient, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{client: client, cache: cache, ttl: ttl}
}

func (s *QueryService) GetPlace(ctx context.Context, fsaID string) (domain.Poi, error) {
	key := fmt.Sprintf("place:%s", fsaID)
	var p domain.Poi
	if s.cached(ctx, key, &p) {
		return p, nil
	}
	p, err := s.client.GetPlace(ctx, fsaID)
	if err != nil {
		return domain.Poi{}, err
	}
	s.store(ctx, key, p)
	return p, nil
}

func (s *QueryService) ListReviews(ctx context.Context, fsaID string) (domain.ReviewListResponse, error) {
	key := fmt.Sprintf("reviews:%s", fsaID)
	var out domain.ReviewListResponse
	if s.cached(ctx, key, &out) {
		return out, nil
	}
	out, err := s.client.ListReviews(ctx, fsaID)
	if err != nil {
		return domain.ReviewListResponse{}, err
	}
	s.store(ctx, key, out)
	return out, nil
}

func (s *QueryService) GetReviewStats(ctx context.Context, fsaID string) (domain.ReviewStatsResponse, error) {
	key := fmt.Sprintf("reviewstats:%s", fsaID)
	var out domain.ReviewStatsResponse
	if s.cached(ctx, key, &out) {
		return out, nil
	}
	out, err := s.client.GetReviewStats(ctx, fsaID)
	if err != nil {
		return domain.ReviewStatsResponse{}, err
	}
	s.store(ctx, key, out)
	return out, nil
}

// CreateReviewRequest writes through to the backend and evicts the
// establishment's review caches so the next read sees the new state.
func (s *QueryService) CreateReviewRequest(ctx context.Context, fsaID string, rating int, subject string) (domain.ReviewRequestResponse, error) {
	out, err := s.client.CreateReviewRequest(ctx, fsaID, rating, subject)
	if err != nil {
		return domain.ReviewRequestResponse{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, fmt.Sprintf("reviews:%s", fsaID))
		_ = s.cache.Del(ctx, fmt.Sprintf("reviewstats:%s", fsaID))
		_ = s.cache.Del(ctx, fmt.Sprintf("place:%s", fsaID))
	}
	return out, nil
}

func (s *QueryService) cached(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dst)
	return ok
}

func (s *QueryService) store(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, s.ttl)
}
