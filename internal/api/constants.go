package api

// Cache-Control header values.
const (
	CacheOneHour = "public, max-age=3600"
)

// suggestionsPath is rate limited per client IP.
const suggestionsPath = "/api/v1/suggestions"
