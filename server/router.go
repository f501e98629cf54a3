package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handler interfaces let the router be tested without the service layer.
type RecommendationHandler interface {
	GetRecommendations(w http.ResponseWriter, r *http.Request)
}

type SpotHandler interface {
	GetSpotsNearby(w http.ResponseWriter, r *http.Request)
	GetSpot(w http.ResponseWriter, r *http.Request)
	ListSpots(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type ForecastHandler interface {
	GetSpotForecast(w http.ResponseWriter, r *http.Request)
}

type PreferenceHandler interface {
	GetPreference(w http.ResponseWriter, r *http.Request)
	PutPreference(w http.ResponseWriter, r *http.Request)
	SetPreferenceActive(w http.ResponseWriter, r *http.Request)
	DeletePreference(w http.ResponseWriter, r *http.Request)
}

type PresetHandler interface {
	CreatePreset(w http.ResponseWriter, r *http.Request)
	ListPresets(w http.ResponseWriter, r *http.Request)
	GetPreset(w http.ResponseWriter, r *http.Request)
	UpdatePreset(w http.ResponseWriter, r *http.Request)
	DeletePreset(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	recommendationHandler RecommendationHandler
	spotHandler           SpotHandler
	forecastHandler       ForecastHandler
	preferenceHandler     PreferenceHandler
	presetHandler         PresetHandler
	userHandler           UserHandler
	router                *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	recommendationHandler RecommendationHandler,
	spotHandler SpotHandler,
	forecastHandler ForecastHandler,
	preferenceHandler PreferenceHandler,
	presetHandler PresetHandler,
	userHandler UserHandler,
	router *mux.Router) *Router {
	return &Router{
		recommendationHandler: recommendationHandler,
		spotHandler:           spotHandler,
		forecastHandler:       forecastHandler,
		preferenceHandler:     preferenceHandler,
		presetHandler:         presetHandler,
		userHandler:           userHandler,
		router:                router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/recommendations", r.recommendationHandler.GetRecommendations).Methods("POST")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/spots/nearby", r.spotHandler.GetSpotsNearby).Methods("GET")
	r.router.HandleFunc("/v1/spots", r.spotHandler.ListSpots).Methods("GET")
	r.router.HandleFunc("/v1/spots/{spot_id}", r.spotHandler.GetSpot).Methods("GET")
	r.router.HandleFunc("/v1/spots/{spot_id}/forecast", r.forecastHandler.GetSpotForecast).Methods("GET")

	// expects ?user_id={user_id}&spot_id={spot_id}
	r.router.HandleFunc("/v1/preferences", r.preferenceHandler.GetPreference).Methods("GET")
	r.router.HandleFunc("/v1/preferences", r.preferenceHandler.PutPreference).Methods("PUT")
	r.router.HandleFunc("/v1/preferences/active", r.preferenceHandler.SetPreferenceActive).Methods("PUT")
	r.router.HandleFunc("/v1/preferences", r.preferenceHandler.DeletePreference).Methods("DELETE")

	r.router.HandleFunc("/v1/users", r.userHandler.CreateUser).Methods("POST")
	r.router.HandleFunc("/v1/users/{user_id}", r.userHandler.GetUser).Methods("GET")
	r.router.HandleFunc("/v1/users/{user_id}", r.userHandler.UpdateProfile).Methods("PUT")
	r.router.HandleFunc("/v1/users/{user_id}", r.userHandler.DeleteUser).Methods("DELETE")

	r.router.HandleFunc("/v1/users/{user_id}/presets", r.presetHandler.CreatePreset).Methods("POST")
	r.router.HandleFunc("/v1/users/{user_id}/presets", r.presetHandler.ListPresets).Methods("GET")
	r.router.HandleFunc("/v1/users/{user_id}/presets/{preset_id}", r.presetHandler.GetPreset).Methods("GET")
	r.router.HandleFunc("/v1/users/{user_id}/presets/{preset_id}", r.presetHandler.UpdatePreset).Methods("PUT")
	r.router.HandleFunc("/v1/users/{user_id}/presets/{preset_id}", r.presetHandler.DeletePreset).Methods("DELETE")

	r.router.HandleFunc("/ping", r.spotHandler.Ping).Methods("GET")
}
