package config

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	PollInterval  Duration
	Provider      string
	ImportWorkers int
	Sleeper       SleeperConfig
	Metrics       MetricsConfig
	Snapshots     SnapshotsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		PollInterval:  durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:      envOrDefault(envProvider, defaultProvider),
		ImportWorkers: intEnvOrDefault(envImportWorkers, defaultImportWorkers),
		Sleeper:       loadSleeper(),
		Metrics:       loadMetrics(),
		Snapshots:     loadSnapshots(),
	}
}
