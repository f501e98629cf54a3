package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Bryanads/thecheckAPI/models/forecast"
	services "github.com/Bryanads/thecheckAPI/service"
)

const DAYS_QUERY_ARG = "days"

// SpotForecastResponse bundles a spot's stored hourly samples with its
// tide extremes.
type SpotForecastResponse struct {
	SpotID       int64                   `json:"spot_id"`
	Hours        []forecast.Sample       `json:"hours"`
	TideExtremes []forecast.ExtremeEvent `json:"tide_extremes"`
}

type ForecastHandler struct {
	forecastService *services.ForecastService
}

func NewForecastHandler(forecastService *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// GetSpotForecast handles GET /v1/spots/{spot_id}/forecast
func (h *ForecastHandler) GetSpotForecast(w http.ResponseWriter, r *http.Request) {
	spotID, err := strconv.ParseInt(mux.Vars(r)["spot_id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid spot_id", http.StatusBadRequest)
		return
	}

	days := 1
	if v := r.URL.Query().Get(DAYS_QUERY_ARG); v != "" {
		days, err = strconv.Atoi(v)
		if err != nil || days < 1 {
			http.Error(w, "Invalid argument "+DAYS_QUERY_ARG, http.StatusBadRequest)
			return
		}
	}

	hours, err := h.forecastService.GetSpotForecast(spotID, days)
	if err != nil {
		log.Println("Error loading forecast:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	extremes, err := h.forecastService.GetTideExtremes(spotID)
	if err != nil {
		log.Println("Error loading tide extremes:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, SpotForecastResponse{
		SpotID:       spotID,
		Hours:        hours,
		TideExtremes: extremes,
	})
}
