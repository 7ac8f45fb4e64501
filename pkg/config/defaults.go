package config

import "time"

const (
	// Empty by default: without a configured Mongo deployment the service
	// falls back to the local file store.
	DefaultMongoURI          = ""
	DefaultMongoDatabaseName = "seoulier"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultLocalStorePath = "seoulier_reservations.json"

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultKafkaTopic = "reservation-events"

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100

	DefaultStoreReadTimeout  = 5 * time.Second
	DefaultStoreWriteTimeout = 5 * time.Second
)
