package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Forecast refresher config
const FORECAST_REFRESHER_SCHEDULE_MINUTES = 180
const FORECAST_HORIZON_DAYS = 7

// Recommendation cache config
const RECOMMENDATION_CACHE_TTL_MINUTES = 60

// StormGlass API
const STORM_GLASS_ENDPOINT_BASE_V2 = "https://api.stormglass.io/v2"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SPOTS_RESOURCE = "spots.json"
const WEATHER_POINT_RESPONSE_RESOURCE = "weather_point_response.json"
const TIDE_EXTREMES_RESPONSE_RESOURCE = "tide_extremes_response.json"

// Config carries the deployment settings read from the environment. A
// .env file in the project root is loaded first when present, so local
// runs do not need exported variables.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	ServerPort  int    `envconfig:"SERVER_PORT" default:"8080"`

	RedisAddress  string `envconfig:"REDIS_ADDRESS" default:"redis:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	StormGlassAPIKey  string `envconfig:"STORM_GLASS_API_KEY" default:""`
	StormGlassBaseURL string `envconfig:"STORM_GLASS_BASE_URL" default:"https://api.stormglass.io/v2"`

	ForecastRefreshMinutes int `envconfig:"FORECAST_REFRESH_MINUTES" default:"180"`
	ForecastHorizonDays    int `envconfig:"FORECAST_HORIZON_DAYS" default:"7"`

	RecommendationCacheTTLMinutes int `envconfig:"RECOMMENDATION_CACHE_TTL_MINUTES" default:"60"`
}

// Load reads the process environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProd reports whether the deployment talks to the real forecast
// provider.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
