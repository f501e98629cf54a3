package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Bryanads/thecheckAPI/models"
	services "github.com/Bryanads/thecheckAPI/service"
)

const (
	USER_ID_QUERY_ARG = "user_id"
	SPOT_ID_QUERY_ARG = "spot_id"
)

type PreferenceHandler struct {
	preferenceService *services.PreferenceService
}

func NewPreferenceHandler(preferenceService *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// GetPreference handles GET /v1/preferences. It returns the fully
// resolved profile, never a partial record.
func (h *PreferenceHandler) GetPreference(w http.ResponseWriter, r *http.Request) {
	userID, spotID, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	profile, err := h.preferenceService.GetResolvedPreference(userID, spotID)
	if err != nil {
		log.Println("Error resolving preference:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, profile)
}

// PutPreference handles PUT /v1/preferences
func (h *PreferenceHandler) PutPreference(w http.ResponseWriter, r *http.Request) {
	var pref models.Preference
	if err := json.NewDecoder(r.Body).Decode(&pref); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if pref.UserID == "" || pref.SpotID == 0 {
		http.Error(w, "user_id and spot_id are required", http.StatusBadRequest)
		return
	}

	stored, err := h.preferenceService.SetUserPreference(pref)
	if err != nil {
		log.Println("Error storing preference:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stored)
}

// SetPreferenceActive handles PUT /v1/preferences/active. The body
// carries {"is_active": bool}.
func (h *PreferenceHandler) SetPreferenceActive(w http.ResponseWriter, r *http.Request) {
	userID, spotID, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	var body struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pref, err := h.preferenceService.SetPreferenceActive(userID, spotID, body.IsActive)
	if err != nil {
		if errors.Is(err, services.ErrPreferenceNotFound) {
			http.Error(w, "Preference not found", http.StatusNotFound)
			return
		}
		log.Println("Error toggling preference:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, pref)
}

// DeletePreference handles DELETE /v1/preferences
func (h *PreferenceHandler) DeletePreference(w http.ResponseWriter, r *http.Request) {
	userID, spotID, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	if err := h.preferenceService.DeleteUserPreference(userID, spotID); err != nil {
		log.Println("Error deleting preference:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PreferenceHandler) parseArgs(vals url.Values, w http.ResponseWriter) (userID string, spotID int64, ok bool) {
	userID = vals.Get(USER_ID_QUERY_ARG)
	if userID == "" {
		http.Error(w, "Invalid argument "+USER_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}
	var err error
	spotID, err = strconv.ParseInt(vals.Get(SPOT_ID_QUERY_ARG), 10, 64)
	if err != nil {
		http.Error(w, "Invalid argument "+SPOT_ID_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}
