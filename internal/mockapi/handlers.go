package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// nearbyRadiusM matches the radius the real backend applies to the
// coordinate listing.
const nearbyRadiusM = 2000

type Handlers struct {
	store *Store
	val   *validator.Validate
}

func NewHandlers(store *Store) *Handlers {
	return &Handlers{store: store, val: validator.New()}
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/places/{lon}/{lat}/", h.nearby)
	s.mux.Get("/search/{query}", h.search)
	s.mux.Get("/place/{fsaID}/", h.place)
	s.mux.Put("/place/{fsaID}/review", h.createReview)
	s.mux.Get("/place/{fsaID}/reviews", h.listReviews)
	s.mux.Get("/place/{fsaID}/review/stats", h.reviewStats)
}

func (h *Handlers) nearby(w http.ResponseWriter, r *http.Request) {
	lon, err1 := strconv.ParseFloat(chi.URLParam(r, "lon"), 64)
	lat, err2 := strconv.ParseFloat(chi.URLParam(r, "lat"), 64)
	if err1 != nil || err2 != nil {
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid coordinate", "lon and lat must be numbers")
		return
	}
	writeJSON(w, http.StatusOK, h.store.Nearby(lon, lat, nearbyRadiusM))
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Search(chi.URLParam(r, "query")))
}

func (h *Handlers) place(w http.ResponseWriter, r *http.Request) {
	p, ok := h.store.Get(chi.URLParam(r, "fsaID"))
	if !ok {
		// the real backend answers unknown ids with a null body
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type reviewCreate struct {
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewSubject string `json:"reviewSubject" validate:"required"`
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var in reviewCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be JSON with rating and reviewSubject")
		return
	}
	in.ReviewSubject = strings.TrimSpace(in.ReviewSubject)
	if err := h.val.Struct(in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	out := h.store.CreateReviewRequest(chi.URLParam(r, "fsaID"), in.Rating, in.ReviewSubject)
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Reviews(chi.URLParam(r, "fsaID")))
}

func (h *Handlers) reviewStats(w http.ResponseWriter, r *http.Request) {
	fsaID := chi.URLParam(r, "fsaID")
	st, ok := h.store.Stats(fsaID)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "no reviews found for FSA ID: "+fsaID)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
