package config

import "time"

// Application-wide constants organized by domain

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second
	NetworkDialTimeout  = 5 * time.Second

	// Batch processing
	DefaultBatchSize = 500
	MaxRetries       = 3
)

// File and Storage Constants
const (
	// Key prefixes
	RecipeImageRoot = "recipes/"
)

// Cache Constants
const (
	MediaCacheSize = 2048
)
