package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "foodfinder/internal/adapters/redis"
	"foodfinder/internal/domain"
)

func newTestCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	in := domain.Poi{
		LitePoi:     domain.LitePoi{Lat: 51.5, Lon: -0.1, FsaID: "A1", Name: "Pizza Place", Amenity: "restaurant"},
		Description: "desc",
	}
	if err := c.Set(ctx, "place:A1", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.Poi
	ok, err := c.Get(ctx, "place:A1", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.FsaID != "A1" || out.Name != "Pizza Place" || out.Description != "desc" {
		t.Fatalf("unexpected value: %+v", out)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var out domain.Poi
	ok, err := c.Get(ctx, "place:missing", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}

	if err := c.Set(ctx, "place:A1", domain.Poi{}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "place:A1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "place:A1", &out); ok {
		t.Fatalf("expected miss after del")
	}
}
