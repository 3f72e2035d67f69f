//go:build integration || !unit

package integration

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"foodfinder/internal/adapters/foodapi"
	"foodfinder/internal/app"
	"foodfinder/internal/mockapi"
)

func newStack(t *testing.T) (*foodapi.Client, *httptest.Server) {
	t.Helper()
	store := mockapi.NewStore(mockapi.DefaultFixtures())
	mockapi.SeedDefaultReviews(store)
	srv := mockapi.New(zerolog.Nop(), 0)
	srv.MountHandlers(mockapi.NewHandlers(store))
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)

	cl, err := foodapi.New(ts.URL)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return cl, ts
}

func ctxT(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSearchFlow_TypingToResults(t *testing.T) {
	cl, _ := newStack(t)

	query := ""
	ctl := app.NewSearchController(cl, func() string { return query })

	// empty input: no query, no results
	if err := ctl.OnInputChanged(ctxT(t)); err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := ctl.Results(); got != nil {
		t.Fatalf("expected no results yet, got %+v", got)
	}

	// user typed "pizza"
	query = "pizza"
	if err := ctl.OnInputChanged(ctxT(t)); err != nil {
		t.Fatalf("err: %v", err)
	}
	got := ctl.Results()
	if len(got) != 1 || got[0].Name != "Pizza Palace" {
		t.Fatalf("unexpected results: %+v", got)
	}

	// cleared input keeps the previous results visible
	query = ""
	if err := ctl.OnInputChanged(ctxT(t)); err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := ctl.Results(); len(got) != 1 {
		t.Fatalf("previous results should remain, got %+v", got)
	}
}

func TestDetailAndReviewFlow(t *testing.T) {
	cl, _ := newStack(t)
	ctx := ctxT(t)

	pois, err := cl.SearchByCoordinate(ctx, -0.1260, 51.5145)
	if err != nil {
		t.Fatalf("nearby: %v", err)
	}
	if len(pois) == 0 {
		t.Fatalf("expected nearby fixtures")
	}

	p, err := cl.GetPlaceForPoi(ctx, pois[0])
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if p.FsaID != pois[0].FsaID {
		t.Fatalf("detail/summary id mismatch: %s vs %s", p.FsaID, pois[0].FsaID)
	}

	created, err := cl.CreateReviewRequest(ctx, p.FsaID, 5, "lunch")
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if created.UUID == "" || created.FsaID != p.FsaID {
		t.Fatalf("unexpected ack: %+v", created)
	}

	list, err := cl.ListReviews(ctx, p.FsaID)
	if err != nil {
		t.Fatalf("list reviews: %v", err)
	}
	found := false
	for _, r := range list.Reviews {
		if r.UUID == created.UUID {
			found = true
		}
	}
	if !found {
		t.Fatalf("created review missing from list: %+v", list)
	}

	st, err := cl.GetReviewStats(ctx, p.FsaID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalReviews != list.Count {
		t.Fatalf("stats/list disagree: %d vs %d", st.TotalReviews, list.Count)
	}
}

func TestBackendValidationSurfacesAsHardError(t *testing.T) {
	cl, _ := newStack(t)

	// the client passes the out-of-range rating through; the backend's
	// 400 must surface as a hard error
	_, err := cl.CreateReviewRequest(ctxT(t), "FHRS-1001", 42, "subject")
	if err == nil {
		t.Fatalf("expected hard error from backend validation")
	}
}

func TestUnknownPlaceIsNotFound(t *testing.T) {
	cl, _ := newStack(t)
	_, err := cl.GetPlace(ctxT(t), "FHRS-9999")
	if !errors.Is(err, foodapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
