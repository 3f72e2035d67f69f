package mockapi

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"foodfinder/internal/domain"
)

type storedReview struct {
	UUID        string
	Rating      int
	Subject     string
	Email       *string
	DisplayName *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Completed   bool
}

// Store is the fixture-backed state behind the mock backend: a fixed set
// of establishments plus an in-memory review log. It is not a search
// engine; lookups are naive filters over the fixture set, which is all a
// front-end test double needs.
type Store struct {
	mu      sync.RWMutex
	pois    map[string]domain.Poi
	order   []string // stable iteration order for deterministic output
	reviews map[string][]storedReview
	now     func() time.Time
}

func NewStore(pois []domain.Poi) *Store {
	s := &Store{
		pois:    make(map[string]domain.Poi, len(pois)),
		reviews: make(map[string][]storedReview),
		now:     time.Now,
	}
	for _, p := range pois {
		if _, ok := s.pois[p.FsaID]; ok {
			continue
		}
		s.pois[p.FsaID] = p
		s.order = append(s.order, p.FsaID)
	}
	return s
}

// SeedReview adds a completed review, as if its email round trip had
// already happened.
func (s *Store) SeedReview(fsaID string, rating int, subject, email, displayName string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[fsaID] = append(s.reviews[fsaID], storedReview{
		UUID:        uuid.NewString(),
		Rating:      rating,
		Subject:     subject,
		Email:       optStr(email),
		DisplayName: optStr(displayName),
		CreatedAt:   at,
		UpdatedAt:   at,
		Completed:   true,
	})
}

func (s *Store) Nearby(lon, lat, radiusM float64) []domain.LitePoi {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LitePoi, 0)
	for _, id := range s.order {
		p := s.pois[id]
		if haversineM(lat, lon, p.Lat, p.Lon) <= radiusM {
			out = append(out, p.LitePoi)
		}
	}
	return out
}

// Search matches case-insensitively against name and cuisine.
func (s *Store) Search(query string) []domain.LitePoi {
	q := strings.ToLower(strings.TrimSpace(query))
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LitePoi, 0)
	if q == "" {
		return out
	}
	for _, id := range s.order {
		p := s.pois[id]
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p.LitePoi)
			continue
		}
		if p.Cuisine != nil && strings.Contains(strings.ToLower(*p.Cuisine), q) {
			out = append(out, p.LitePoi)
		}
	}
	return out
}

func (s *Store) Get(fsaID string) (domain.Poi, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pois[fsaID]
	return p, ok
}

// CreateReviewRequest records a pending review request and returns the
// acknowledgement the real backend would send.
func (s *Store) CreateReviewRequest(fsaID string, rating int, subject string) domain.ReviewRequestResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	id := uuid.NewString()
	s.reviews[fsaID] = append(s.reviews[fsaID], storedReview{
		UUID:      id,
		Rating:    rating,
		Subject:   subject,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return domain.ReviewRequestResponse{
		UUID:          id,
		FsaID:         fsaID,
		Rating:        rating,
		ReviewSubject: subject,
	}
}

func (s *Store) Reviews(fsaID string) domain.ReviewListResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rs := s.reviews[fsaID]
	out := domain.ReviewListResponse{FsaID: fsaID, Count: len(rs), Reviews: make([]domain.ReviewResponse, 0, len(rs))}
	for _, r := range rs {
		out.Reviews = append(out.Reviews, domain.ReviewResponse{
			UUID:          r.UUID,
			Rating:        r.Rating,
			ReviewSubject: r.Subject,
			Email:         r.Email,
			DisplayName:   r.DisplayName,
			CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:     r.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// Stats aggregates the stored reviews. ok is false when the
// establishment has no reviews at all, which the backend reports as 404.
func (s *Store) Stats(fsaID string) (domain.ReviewStatsResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rs := s.reviews[fsaID]
	if len(rs) == 0 {
		return domain.ReviewStatsResponse{}, false
	}

	st := domain.ReviewStatsResponse{
		FsaID:              fsaID,
		TotalReviews:       len(rs),
		MinRating:          rs[0].Rating,
		MaxRating:          rs[0].Rating,
		RatingDistribution: make(map[int]int),
	}
	// newest subject labels the aggregate
	sorted := make([]storedReview, len(rs))
	copy(sorted, rs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	st.ReviewSubject = sorted[0].Subject

	var sum int
	for _, r := range rs {
		if r.Completed {
			st.CompletedReviews++
		} else {
			st.PendingReviews++
		}
		sum += r.Rating
		if r.Rating < st.MinRating {
			st.MinRating = r.Rating
		}
		if r.Rating > st.MaxRating {
			st.MaxRating = r.Rating
		}
		st.RatingDistribution[r.Rating]++
	}
	st.AverageRating = float64(sum) / float64(len(rs))
	return st, true
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// haversineM returns the great-circle distance in meters.
func haversineM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusM = 6371000.0
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(a))
}
