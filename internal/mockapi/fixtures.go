package mockapi

import (
	"time"

	"foodfinder/internal/domain"
)

func ptrStr(s string) *string   { return &s }
func ptrF64(f float64) *float64 { return &f }
func ptrBool(b bool) *bool      { return &b }

// DefaultFixtures is a small central-London fixture set covering the
// amenity types the real backend serves.
func DefaultFixtures() []domain.Poi {
	return []domain.Poi{
		{
			LitePoi:      domain.LitePoi{Lat: 51.5145, Lon: -0.1260, FsaID: "FHRS-1001", Name: "Pizza Palace", Amenity: "restaurant"},
			Cuisine:      ptrStr("italian;pizza"),
			StarRating:   ptrF64(4.5),
			OpeningHours: ptrStr("Mo-Su 11:00-23:00"),
			Vegetarian:   ptrBool(true),
			Vegan:        ptrBool(false),
			Description:  "Wood-fired pizzas just off Covent Garden.",
		},
		{
			LitePoi:      domain.LitePoi{Lat: 51.5132, Lon: -0.1245, FsaID: "FHRS-1002", Name: "Burger Kingdom", Amenity: "fast_food"},
			Cuisine:      ptrStr("american;burger"),
			OpeningHours: ptrStr("Mo-Su 10:00-22:00"),
			Vegetarian:   ptrBool(false),
			Vegan:        ptrBool(false),
			Description:  "Smashed patties and crinkle fries.",
		},
		{
			LitePoi:     domain.LitePoi{Lat: 51.5168, Lon: -0.1310, FsaID: "FHRS-1003", Name: "Sakura Sushi Bar", Amenity: "restaurant"},
			Cuisine:     ptrStr("japanese;sushi"),
			StarRating:  ptrF64(4.8),
			Vegetarian:  ptrBool(true),
			Vegan:       ptrBool(true),
			Description: "Counter seating, daily fish deliveries.",
		},
		{
			LitePoi:     domain.LitePoi{Lat: 51.5090, Lon: -0.1190, FsaID: "FHRS-1004", Name: "The Crown & Anchor", Amenity: "pub"},
			Description: "Riverside pub with a small kitchen.",
		},
		{
			LitePoi:      domain.LitePoi{Lat: 52.2053, Lon: 0.1218, FsaID: "FHRS-2001", Name: "Fen Road Chippy", Amenity: "fast_food"},
			Cuisine:      ptrStr("fish_and_chips"),
			OpeningHours: ptrStr("Tu-Sa 16:30-21:30"),
			Description:  "Cambridge chip shop, cash only.",
		},
	}
}

// SeedDefaultReviews populates a few completed reviews so the stats and
// list endpoints have data out of the box.
func SeedDefaultReviews(s *Store) {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	s.SeedReview("FHRS-1001", 5, "margherita", "ana@example.com", "Ana", base)
	s.SeedReview("FHRS-1001", 4, "service", "", "Ben", base.Add(24*time.Hour))
	s.SeedReview("FHRS-1001", 5, "margherita", "cara@example.com", "Cara", base.Add(48*time.Hour))
	s.SeedReview("FHRS-1003", 5, "omakase", "dev@example.com", "Dev", base.Add(72*time.Hour))
}
