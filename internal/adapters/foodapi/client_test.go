package foodapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodfinder/internal/adapters/foodapi"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSearchByText_DecodesLitePois(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"lat":51.5,"lon":-0.1,"fsa_id":"A1","name":"Pizza Place","amenity":"restaurant"}]`))
	}))
	defer ts.Close()

	cl, err := foodapi.New(ts.URL)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	pois, err := cl.SearchByText(testCtx(t), "pizza")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotPath != "/search/pizza" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if len(pois) != 1 || pois[0].Name != "Pizza Place" || pois[0].FsaID != "A1" {
		t.Fatalf("unexpected result: %+v", pois)
	}
	if pois[0].Lat != 51.5 || pois[0].Lon != -0.1 || pois[0].Amenity != "restaurant" {
		t.Fatalf("unexpected result: %+v", pois[0])
	}
}

func TestSearchByCoordinate_Path(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	cl, _ := foodapi.New(ts.URL)
	pois, err := cl.SearchByCoordinate(testCtx(t), -0.1275, 51.507)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotPath != "/places/-0.1275/51.507/" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if len(pois) != 0 {
		t.Fatalf("expected empty result, got %+v", pois)
	}
}

func TestGetPlace_DecodesDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/place/A1/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"lat":51.5,"lon":-0.1,"fsa_id":"A1","name":"Pizza Place","amenity":"restaurant",` +
			`"cuisine":"italian","star_rating":4.5,"opening_hours":"9-5","vegetarian":true,"vegan":false,"description":"desc"}`))
	}))
	defer ts.Close()

	cl, _ := foodapi.New(ts.URL)
	p, err := cl.GetPlace(testCtx(t), "A1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.FsaID != "A1" || p.Name != "Pizza Place" {
		t.Fatalf("unexpected poi: %+v", p)
	}
	if p.StarRating == nil || *p.StarRating != 4.5 {
		t.Fatalf("expected star_rating 4.5, got %+v", p.StarRating)
	}
	if p.Vegan == nil || *p.Vegan {
		t.Fatalf("expected vegan=false, got %+v", p.Vegan)
	}
	if p.Vegetarian == nil || !*p.Vegetarian {
		t.Fatalf("expected vegetarian=true, got %+v", p.Vegetarian)
	}
	if p.Description != "desc" || p.Cuisine == nil || *p.Cuisine != "italian" {
		t.Fatalf("unexpected detail fields: %+v", p)
	}
}

func TestGetPlace_NullBodyIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the backend answers unknown ids with 200 and a null body
		_, _ = w.Write([]byte(`null`))
	}))
	defer ts.Close()

	cl, _ := foodapi.New(ts.URL)
	_, err := cl.GetPlace(testCtx(t), "nope")
	if !errors.Is(err, foodapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateReviewRequest_PutBodyPassThrough(t *testing.T) {
	var gotMethod, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"uuid": "11111111-2222-3333-4444-555555555555", "fsaId": "A1",
			"rating": 99, "reviewSubject": "the roof",
		})
	}))
	defer ts.Close()

	cl, _ := foodapi.New(ts.URL)
	// rating 99 is out of range; the client still sends it unmodified
	resp, err := cl.CreateReviewRequest(testCtx(t), "A1", 99, "the roof")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("expected PUT, got %s", gotMethod)
	}
	if gotBody != `{"rating":99,"reviewSubject":"the roof"}` {
		t.Fatalf("unexpected body: %q", gotBody)
	}
	if resp.UUID == "" || resp.FsaID != "A1" || resp.Rating != 99 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateReviewRequest_400IsHardError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"rating out of range"}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	cl, _ := foodapi.New(ts.URL)
	_, err := cl.CreateReviewRequest(testCtx(t), "A1", 0, "subject")
	if err == nil {
		t.Fatalf("expected error for 400")
	}
}

func TestListReviews_Decodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/place/A1/reviews" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"fsaId":"A1","count":1,"reviews":[` +
			`{"uuid":"u1","rating":4,"reviewSubject":"service","email":null,"displayName":"Ana",` +
			`"createdAt":"2026-01-02T10:00:00Z","updatedAt":"2026-01-02T10:00:00Z"}]}`))
	}))
	defer ts.Close()

	cl, _ := foodapi.New(ts.URL)
	out, err := cl.ListReviews(testCtx(t), "A1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Count != 1 || len(out.Reviews) != 1 {
		t.Fatalf("unexpected list: %+v", out)
	}
	r := out.Reviews[0]
	if r.Email != nil || r.DisplayName == nil || *r.DisplayName != "Ana" {
		t.Fatalf("unexpected review: %+v", r)
	}
}

func TestGetReviewStats_DistributionKeys(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"fsaId":"A1","reviewSubject":"overall","totalReviews":13,` +
			`"completedReviews":13,"pendingReviews":0,"averageRating":4.77,"minRating":4,"maxRating":5,` +
			`"ratingDistribution":{"5":10,"4":3}}`))
	}))
	defer ts.Close()

	cl, _ := foodapi.New(ts.URL)
	st, err := cl.GetReviewStats(testCtx(t), "A1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(st.RatingDistribution) != 2 {
		t.Fatalf("expected 2 distribution entries, got %+v", st.RatingDistribution)
	}
	if st.RatingDistribution[5] != 10 || st.RatingDistribution[4] != 3 {
		t.Fatalf("unexpected distribution: %+v", st.RatingDistribution)
	}
}

func TestGetStats_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, _ := foodapi.New(ts.URL)
	_, err := cl.GetReviewStats(testCtx(t), "A1")
	if !errors.Is(err, foodapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDecodeFailureIsHardError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"this is": not json`))
	}))
	defer ts.Close()

	cl, _ := foodapi.New(ts.URL)
	_, err := cl.SearchByText(testCtx(t), "pizza")
	if err == nil {
		t.Fatalf("expected decode error")
	}
}
