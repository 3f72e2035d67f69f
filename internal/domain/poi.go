package domain

// LitePoi is the summary projection of a food establishment returned by
// the list and search endpoints. FsaID is the food-safety-agency registry
// id and is the join key for everything else.
type LitePoi struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	FsaID   string  `json:"fsa_id"`
	Name    string  `json:"name"`
	Amenity string  `json:"amenity"`
}

// Poi is the full detail record for a single establishment. Optional
// fields are pointers: absent on the wire means unknown, not zero.
type Poi struct {
	LitePoi
	Cuisine      *string  `json:"cuisine"`
	StarRating   *float64 `json:"star_rating"`
	OpeningHours *string  `json:"opening_hours"`
	Vegetarian   *bool    `json:"vegetarian"`
	Vegan        *bool    `json:"vegan"`
	Description  string   `json:"description"`
}
