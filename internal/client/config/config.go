// Package config holds runtime settings for the FitQuest CLI.
//
// Sources are layered: built-in defaults, then an optional JSON file, then
// environment variables. Later sources win. Command-line flags are bound by
// the CLI layer on top of the loaded Config.
package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the endpoints of the two backend services and the path of
// the local client database.
type Config struct {
	// APIBaseURL is the base URL of the main REST API (auth, quests,
	// workouts, users, geofences).
	APIBaseURL string `json:"api_base_url" env:"FITQUEST_API_URL"`

	// FeedBaseURL is the base URL of the social feed service.
	FeedBaseURL string `json:"feed_base_url" env:"FITQUEST_FEED_URL"`

	// DatabasePath is the sqlite file holding the session and award markers.
	DatabasePath string `json:"database_path" env:"FITQUEST_DB"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.FeedBaseURL = "http://localhost:8081/api"
	c.DatabasePath = "fitquest.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the JSON file named by FITQUEST_CONFIG (if set) and from the
// environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
