package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigFileEnv names the environment variable pointing at an optional JSON
// config file.
const ConfigFileEnv = "FITQUEST_CONFIG"

// parseJSON overlays cfg with values from the JSON file named by
// FITQUEST_CONFIG. An unset variable means no JSON layer; a named file that
// cannot be read or parsed is an error. Only fields present in the file
// overwrite the current values.
func parseJSON(cfg *Config) error {
	path := os.Getenv(ConfigFileEnv)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc struct {
		APIBaseURL   *string `json:"api_base_url"`
		FeedBaseURL  *string `json:"feed_base_url"`
		DatabasePath *string `json:"database_path"`
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.FeedBaseURL != nil {
		cfg.FeedBaseURL = *jc.FeedBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	return nil
}
