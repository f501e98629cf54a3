package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Bryanads/thecheckAPI/models"
	services "github.com/Bryanads/thecheckAPI/service"
)

type PresetHandler struct {
	presetService *services.PresetService
}

func NewPresetHandler(presetService *services.PresetService) *PresetHandler {
	return &PresetHandler{presetService: presetService}
}

// CreatePreset handles POST /v1/users/{user_id}/presets
func (h *PresetHandler) CreatePreset(w http.ResponseWriter, r *http.Request) {
	var preset models.Preset
	if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	preset.UserID = mux.Vars(r)["user_id"]

	created, err := h.presetService.CreatePreset(preset)
	if err != nil {
		log.Println("Error creating preset:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// ListPresets handles GET /v1/users/{user_id}/presets
func (h *PresetHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := h.presetService.ListPresets(mux.Vars(r)["user_id"])
	if err != nil {
		log.Println("Error listing presets:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, presets)
}

// GetPreset handles GET /v1/users/{user_id}/presets/{preset_id}
func (h *PresetHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	preset, err := h.presetService.GetPreset(vars["user_id"], vars["preset_id"])
	if err != nil {
		log.Println("Error loading preset:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if preset == nil {
		http.Error(w, "Preset not found", http.StatusNotFound)
		return
	}
	writeJSON(w, preset)
}

// UpdatePreset handles PUT /v1/users/{user_id}/presets/{preset_id}
func (h *PresetHandler) UpdatePreset(w http.ResponseWriter, r *http.Request) {
	var preset models.Preset
	if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	vars := mux.Vars(r)
	preset.UserID = vars["user_id"]
	preset.PresetID = vars["preset_id"]

	updated, err := h.presetService.UpdatePreset(preset)
	if err != nil {
		if errors.Is(err, services.ErrPresetNotFound) {
			http.Error(w, "Preset not found", http.StatusNotFound)
			return
		}
		log.Println("Error updating preset:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, updated)
}

// DeletePreset handles DELETE /v1/users/{user_id}/presets/{preset_id}
func (h *PresetHandler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.presetService.DeletePreset(vars["user_id"], vars["preset_id"]); err != nil {
		log.Println("Error deleting preset:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
