package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bluele/gcache"
	"github.com/gorilla/mux"

	"github.com/jusunglee/bvg-go/pkg/bvg"
)

// Handler handles HTTP requests
type Handler struct {
	client bvg.Client
	cache  gcache.Cache
}

// NewHandler creates a new HTTP handler.
// Encoded responses are cached per path until the data changes or ttl passes.
func NewHandler(client bvg.Client, ttl time.Duration) *Handler {
	return &Handler{
		client: client,
		cache: gcache.New(256).
			LRU().
			Expiration(ttl).
			Build(),
	}
}

// RegisterRoutes registers all routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.handleIndex).Methods("GET")
	r.HandleFunc("/stations", h.handleStations).Methods("GET")
	r.HandleFunc("/stations/{ids}", h.handleByID).Methods("GET")
	r.HandleFunc("/lines", h.handleLines).Methods("GET")
	r.HandleFunc("/lines/{name}/stations", h.handleByLine).Methods("GET")
}

// Response wraps API responses
type Response struct {
	Data    interface{} `json:"data"`
	Updated string      `json:"updated,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"title":  "bvg-go",
		"readme": "Consolidated BVG U-Bahn stations and lines",
	}
	h.writeJSON(w, response)
}

func (h *Handler) handleStations(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, func() (interface{}, int, error) {
		stations, err := h.client.GetStations()
		return stations, http.StatusInternalServerError, err
	})
}

func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request) {
	ids := strings.Split(mux.Vars(r)["ids"], ",")

	h.cached(w, r, func() (interface{}, int, error) {
		stations, err := h.client.GetStationsByIDs(ids)
		return stations, http.StatusNotFound, err
	})
}

func (h *Handler) handleLines(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, func() (interface{}, int, error) {
		lines, err := h.client.GetLines()
		return lines, http.StatusInternalServerError, err
	})
}

func (h *Handler) handleByLine(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	h.cached(w, r, func() (interface{}, int, error) {
		stations, err := h.client.GetStationsByLine(name)
		return stations, http.StatusNotFound, err
	})
}

// cached serves the encoded response for the request path, building it with
// load on a miss. Errors are never cached.
func (h *Handler) cached(w http.ResponseWriter, r *http.Request, load func() (interface{}, int, error)) {
	updated := h.client.GetLastUpdate()
	key := fmt.Sprintf("%s@%d", r.URL.Path, updated.UnixNano())

	if body, err := h.cache.Get(key); err == nil {
		h.writeBody(w, body.([]byte))
		return
	}

	data, status, err := load()
	if err != nil {
		h.writeError(w, err.Error(), status)
		return
	}

	response := Response{Data: data}
	if !updated.IsZero() {
		response.Updated = updated.Format(time.RFC3339)
	}
	body, err := json.Marshal(response)
	if err != nil {
		h.writeError(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	h.cache.Set(key, body)
	h.writeBody(w, body)
}

func (h *Handler) writeBody(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.writeError(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
