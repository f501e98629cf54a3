package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	services "github.com/Bryanads/thecheckAPI/service"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

type SpotHandler struct {
	spotService *services.SpotService
}

func NewSpotHandler(spotService *services.SpotService) *SpotHandler {
	return &SpotHandler{spotService: spotService}
}

// GetSpotsNearby handles GET /v1/spots/nearby
func (h *SpotHandler) GetSpotsNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	spots, err := h.spotService.GetSpotsNearby(lat, lon, radius)
	if err != nil {
		log.Println("Error loading nearby spots:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, spots)
}

// GetSpot handles GET /v1/spots/{spot_id}
func (h *SpotHandler) GetSpot(w http.ResponseWriter, r *http.Request) {
	spotID, err := strconv.ParseInt(mux.Vars(r)["spot_id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid spot_id", http.StatusBadRequest)
		return
	}

	spot, err := h.spotService.GetSpot(spotID)
	if err != nil {
		log.Println("Error loading spot:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if spot == nil {
		http.Error(w, "Spot not found", http.StatusNotFound)
		return
	}

	writeJSON(w, spot)
}

// ListSpots handles GET /v1/spots
func (h *SpotHandler) ListSpots(w http.ResponseWriter, r *http.Request) {
	spots, err := h.spotService.ListSpots()
	if err != nil {
		log.Println("Error listing spots:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, spots)
}

// Ping handles GET /ping
func (h *SpotHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *SpotHandler) parseArgs(vals url.Values, w http.ResponseWriter) (lat, lon, radius float64, ok bool) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
