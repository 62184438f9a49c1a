package config

import "time"

// SleeperConfig controls how the sleeper directory client reaches the API.
type SleeperConfig struct {
	BaseURL string
	Timeout Duration
}

func loadSleeper() SleeperConfig {
	return SleeperConfig{
		BaseURL: envOrDefault(envSleeperBaseURL, ""),
		Timeout: durationEnvOrDefault(envSleeperTimeout, 30*time.Second),
	}
}
