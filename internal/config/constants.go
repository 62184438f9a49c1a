package config

import "time"

const (
	envPort           = "PORT"
	envPollInterval   = "POLL_INTERVAL"
	envProvider       = "PROVIDER"
	envImportWorkers  = "IMPORT_WORKERS"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envSleeperBaseURL = "SLEEPER_BASE_URL"
	envSleeperTimeout = "SLEEPER_TIMEOUT"
	envSnapshotOn     = "SNAPSHOT_ENABLED"
	envSnapshotDir    = "SNAPSHOT_DIR"
	envSnapshotDays   = "SNAPSHOT_RETENTION_DAYS"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// The player directory changes rarely during a week; one refresh per hour
	// keeps the snapshot warm without hammering the upstream API.
	defaultPollInterval  = time.Hour
	defaultImportWorkers = 4
	defaultMetricsPort   = "9090"
	defaultServiceName   = "roster-data-service"
	defaultSnapshotOn    = true
	defaultSnapshotDir   = "data/snapshots"
	defaultSnapshotDays  = 14
)
