package config

import "time"

// Application-wide constants organized by domain

// Card Database Constants
const (
	DefaultAPIBaseURL = "https://db.ygoprodeck.com/api/v7"

	// Request pacing and retries
	MinRequestInterval = 100 * time.Millisecond
	MaxRetries         = 3
	RateLimitedDelay   = 2 * time.Second
	ServerErrorDelay   = 1 * time.Second
	NetworkErrorDelay  = 1 * time.Second
	RequestTimeout     = 30 * time.Second

	// Response cache
	ResponseCacheTTL  = 24 * time.Hour
	ResponseCacheSize = 1000

	// Batch lookup
	MaxIDsPerRequest = 50
)

// Search Constants
const (
	DefaultPageSize     = 50
	MinKeywordLength    = 2
	SearchDebounce      = 300 * time.Millisecond
	SearchTimeout       = 15 * time.Second
	ArchetypeSuggestMax = 10

	// Custom card searches
	CustomCardSearchLimit = 50
)

// Database Constants
const (
	DefaultQueryTimeout = 30 * time.Second
	BatchQueryTimeout   = 30 * time.Second
	HistoryLimit        = 50
)

// Storage Constants
const (
	CustomCardBucketRoot = "custom-cards"
	MaxImageSize         = 10 * 1024 * 1024 // 10MB
	ImageCacheControl    = "public, max-age=31536000"
)

// Export Constants
const (
	ExportTimeout       = 2 * time.Minute
	ImageFetchTimeout   = 20 * time.Second
	ImageFetchWorkers   = 6
	ImageCacheSize      = 500
	PlaceholderNameSize = 15
)

// UI Constants
const (
	NotFoundPreview = 5
)
