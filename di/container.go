package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/Bryanads/thecheckAPI/api"
	"github.com/Bryanads/thecheckAPI/api/stormglass"
	"github.com/Bryanads/thecheckAPI/config"
	"github.com/Bryanads/thecheckAPI/dao/redis"
	"github.com/Bryanads/thecheckAPI/db"
	"github.com/Bryanads/thecheckAPI/recommendation"
	"github.com/Bryanads/thecheckAPI/server"
	"github.com/Bryanads/thecheckAPI/server/handlers"
	services "github.com/Bryanads/thecheckAPI/service"
)

// Container holds all application dependencies.
type Container struct {
	Config                   *config.Config
	RedisClient              db.RedisClient
	SpotDao                  *redis.RedisSpotDAO
	ForecastDao              *redis.RedisForecastDAO
	PreferenceDao            *redis.RedisPreferenceDAO
	UserDao                  *redis.RedisUserDAO
	PresetDao                *redis.RedisPresetDAO
	RecommendationCacheDao   *redis.RedisRecommendationCacheDAO
	StormGlassAPI            stormglass.StormGlassAPI
	SpotService              *services.SpotService
	ForecastService          *services.ForecastService
	ForecastRefresherService *services.ForecastRefresherService
	RecommendationService    *services.RecommendationService
	PreferenceService        *services.PreferenceService
	PresetService            *services.PresetService
	UserService              *services.UserService
	MuxRouter                *mux.Router
	Router                   *server.Router
	TheCheckHttpServer       *server.TheCheckHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	log.Printf("initializing container - env: %s", cfg.Environment)
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	spotDao := redis.NewRedisSpotDAO(redisClient)
	forecastDao := redis.NewRedisForecastDAO(redisClient)
	preferenceDao := redis.NewRedisPreferenceDAO(redisClient)
	userDao := redis.NewRedisUserDAO(redisClient)
	presetDao := redis.NewRedisPresetDAO(redisClient)
	recommendationCacheDao := redis.NewRedisRecommendationCacheDAO(redisClient)

	// StormGlass burns quota per call, so dev environments run against
	// canned fixtures.
	var stormGlassAPI stormglass.StormGlassAPI
	if !cfg.IsProd() {
		stormGlassAPI = stormglass.NewStormGlassApiClientMock()
		log.Printf("Using mock storm glass api")
	} else {
		log.Printf("Using prod storm glass api")
		httpClient := api.NewHTTPClient(cfg.StormGlassBaseURL)

		stormGlassAPI = stormglass.NewStormGlassApiClient(httpClient)
		stormGlassAPI.SetAPIKey(cfg.StormGlassAPIKey)
	}

	spotService := services.NewSpotService(spotDao)
	forecastService := services.NewForecastService(forecastDao)
	forecastRefresherService := services.NewForecastRefresherService(
		spotDao, forecastDao, stormGlassAPI, cfg.ForecastHorizonDays)
	recommendationService := services.NewRecommendationService(
		spotDao, forecastDao, preferenceDao, userDao, recommendationCacheDao,
		recommendation.DefaultPolicy,
		time.Duration(cfg.RecommendationCacheTTLMinutes)*time.Minute)
	preferenceService := services.NewPreferenceService(preferenceDao, userDao)
	presetService := services.NewPresetService(presetDao)
	userService := services.NewUserService(userDao)

	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	spotHandler := handlers.NewSpotHandler(spotService)
	forecastHandler := handlers.NewForecastHandler(forecastService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	presetHandler := handlers.NewPresetHandler(presetService)
	userHandler := handlers.NewUserHandler(userService)

	muxRouter := mux.NewRouter()

	router := server.NewRouter(
		recommendationHandler,
		spotHandler,
		forecastHandler,
		preferenceHandler,
		presetHandler,
		userHandler,
		muxRouter)

	theCheckHttpServer := server.NewTheCheckHttpServer(router, muxRouter, cfg.ServerPort)

	return &Container{
		Config:                   cfg,
		RedisClient:              redisClient,
		SpotDao:                  spotDao,
		ForecastDao:              forecastDao,
		PreferenceDao:            preferenceDao,
		UserDao:                  userDao,
		PresetDao:                presetDao,
		RecommendationCacheDao:   recommendationCacheDao,
		StormGlassAPI:            stormGlassAPI,
		SpotService:              spotService,
		ForecastService:          forecastService,
		ForecastRefresherService: forecastRefresherService,
		RecommendationService:    recommendationService,
		PreferenceService:        preferenceService,
		PresetService:            presetService,
		UserService:              userService,
		MuxRouter:                muxRouter,
		Router:                   router,
		TheCheckHttpServer:       theCheckHttpServer,
	}
}
