package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "tripora"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultLogLevel = "info"

	DefaultJWTExpiry = 72 * time.Hour

	DefaultSMTPPort  = "587"
	DefaultFromName  = "Tripora Travel"
	DefaultFromEmail = "noreply@tripora.example"

	DefaultKafkaTopic = "tripora.events"

	DefaultUploadDir     = "./uploads"
	DefaultMaxUploadSize = 5 * 1024 * 1024 // 5MB

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB, multipart uploads excepted

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
