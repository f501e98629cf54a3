package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Bryanads/thecheckAPI/models"
	services "github.com/Bryanads/thecheckAPI/service"
)

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
}

func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// GetRecommendations handles POST /v1/recommendations
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	recs, err := h.recommendationService.GetRecommendations(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrNoSpots) || errors.Is(err, services.ErrBadTimeWindow) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Error computing recommendations:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(recs); err != nil {
		log.Println("Error encoding response:", err)
	}
}
