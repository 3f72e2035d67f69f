package foodapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodfinder/internal/adapters/observability"
	"foodfinder/internal/domain"
)

// Client is a stateless mapper between UI intents and the places backend.
// Each operation issues exactly one HTTP round trip: no retries, no
// client-side caching or rate limiting, no validation beyond what the
// backend enforces. Any non-2xx status or decode failure is a hard error.
type Client struct {
	base string
	hc   *http.Client
}

var (
	ErrNotFound = errors.New("foodapi: not found")
)

func New(base string) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("foodapi: base URL is required")
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
	}, nil
}

// SearchByCoordinate lists establishments around a point.
func (c *Client) SearchByCoordinate(ctx context.Context, lon, lat float64) ([]domain.LitePoi, error) {
	u := fmt.Sprintf("%s/places/%s/%s/", c.base, fmtCoord(lon), fmtCoord(lat))
	var out []domain.LitePoi
	return out, c.get(ctx, "places", u, &out)
}

// SearchByText runs a free-text search. An empty query is sent as-is;
// the backend owns that edge.
func (c *Client) SearchByText(ctx context.Context, query string) ([]domain.LitePoi, error) {
	u := fmt.Sprintf("%s/search/%s", c.base, url.PathEscape(query))
	var out []domain.LitePoi
	return out, c.get(ctx, "search", u, &out)
}

// GetPlace fetches the full detail record. The backend answers unknown
// ids with a JSON null body, which surfaces here as ErrNotFound.
func (c *Client) GetPlace(ctx context.Context, fsaID string) (domain.Poi, error) {
	u := fmt.Sprintf("%s/place/%s/", c.base, url.PathEscape(fsaID))
	var out *domain.Poi
	if err := c.get(ctx, "place", u, &out); err != nil {
		return domain.Poi{}, err
	}
	if out == nil {
		return domain.Poi{}, fmt.Errorf("place %s: %w", fsaID, ErrNotFound)
	}
	return *out, nil
}

func (c *Client) GetPlaceForPoi(ctx context.Context, p domain.LitePoi) (domain.Poi, error) {
	return c.GetPlace(ctx, p.FsaID)
}

// CreateReviewRequest submits a review request. Rating is passed through
// unmodified; the backend rejects out-of-range values.
func (c *Client) CreateReviewRequest(ctx context.Context, fsaID string, rating int, subject string) (domain.ReviewRequestResponse, error) {
	u := fmt.Sprintf("%s/place/%s/review", c.base, url.PathEscape(fsaID))
	body := struct {
		Rating        int    `json:"rating"`
		ReviewSubject string `json:"reviewSubject"`
	}{Rating: rating, ReviewSubject: subject}

	var out domain.ReviewRequestResponse
	return out, c.do(ctx, "review_create", http.MethodPut, u, body, &out)
}

func (c *Client) ListReviews(ctx context.Context, fsaID string) (domain.ReviewListResponse, error) {
	u := fmt.Sprintf("%s/place/%s/reviews", c.base, url.PathEscape(fsaID))
	var out domain.ReviewListResponse
	return out, c.get(ctx, "reviews", u, &out)
}

func (c *Client) GetReviewStats(ctx context.Context, fsaID string) (domain.ReviewStatsResponse, error) {
	u := fmt.Sprintf("%s/place/%s/review/stats", c.base, url.PathEscape(fsaID))
	var out domain.ReviewStatsResponse
	return out, c.get(ctx, "review_stats", u, &out)
}

// ---- internals ----

func (c *Client) get(ctx context.Context, endpoint, u string, out any) error {
	return c.do(ctx, endpoint, http.MethodGet, u, nil, out)
}

func (c *Client) do(ctx context.Context, endpoint, method, u string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("foodapi: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("foodapi", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("foodapi: %s %s: %w", method, u, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("foodapi", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s %s: %w", method, u, ErrNotFound)
		}
		return fmt.Errorf("foodapi: %s returned status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("foodapi: decode %s response: %w", endpoint, err)
	}
	return nil
}

// fmtCoord renders a coordinate without trailing zeros, matching how the
// backend's path parameters are written by hand.
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
