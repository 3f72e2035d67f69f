package domain

// ReviewRequestResponse is the backend's acknowledgement of a newly
// created review request.
type ReviewRequestResponse struct {
	UUID          string `json:"uuid"`
	FsaID         string `json:"fsaId"`
	Rating        int    `json:"rating"`
	ReviewSubject string `json:"reviewSubject"`
}

// ReviewResponse is a persisted review. Timestamps are string-encoded;
// their format is owned by the backend and passed through untouched.
type ReviewResponse struct {
	UUID          string  `json:"uuid"`
	Rating        int     `json:"rating"`
	ReviewSubject string  `json:"reviewSubject"`
	Email         *string `json:"email"`
	DisplayName   *string `json:"displayName"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

type ReviewListResponse struct {
	FsaID   string           `json:"fsaId"`
	Count   int              `json:"count"`
	Reviews []ReviewResponse `json:"reviews"`
}

// ReviewStatsResponse aggregates the reviews of one establishment.
// RatingDistribution maps a rating value (1..5) to the number of reviews
// carrying it; encoding/json converts the wire's string keys for us.
type ReviewStatsResponse struct {
	FsaID              string      `json:"fsaId"`
	ReviewSubject      string      `json:"reviewSubject"`
	TotalReviews       int         `json:"totalReviews"`
	CompletedReviews   int         `json:"completedReviews"`
	PendingReviews     int         `json:"pendingReviews"`
	AverageRating      float64     `json:"averageRating"`
	MinRating          int         `json:"minRating"`
	MaxRating          int         `json:"maxRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}
