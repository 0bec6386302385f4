package handlers

import "time"

// ShortenRequest is the request body for creating a short URL.
type ShortenRequest struct {
	Body struct {
		URL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"url" minLength:"1" maxLength:"2048"`
	}
}

// ShortenResponse is the response for a successfully created short URL.
type ShortenResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The short URL location" header:"Location"`
	}
	Body struct {
		Code        string     `doc:"The short code"                example:"K3f9Qz"                             json:"code"`
		ShortURL    string     `doc:"The full short URL"            example:"http://localhost:8888/K3f9Qz"       json:"shortUrl"`
		OriginalURL string     `doc:"The original URL"              example:"https://example.com/very/long/path" json:"originalUrl"`
		CreatedAt   time.Time  `doc:"Creation timestamp"            json:"createdAt"`
		ExpiresAt   *time.Time `doc:"Expiry timestamp, if any"      json:"expiresAt,omitempty"`
	}
}

// RedirectRequest is the request for redirecting a short URL.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"K3f9Qz" path:"code"`
}

// RedirectResponse redirects the client to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}

// InvalidateCacheRequest is the request for evicting a cached mapping.
type InvalidateCacheRequest struct {
	Code string `doc:"The short code" example:"K3f9Qz" path:"code"`
}

// InvalidateCacheResponse is the empty response for a cache eviction.
type InvalidateCacheResponse struct {
	Status int
}

// CacheStatsResponse reports redirect-cache occupancy for monitoring.
type CacheStatsResponse struct {
	Body struct {
		CacheEnabled    bool  `doc:"Whether the cache backend is reachable" json:"cacheEnabled"`
		TotalCachedURLs int64 `doc:"Approximate cached key count"           json:"totalCachedUrls"`
		TTLSeconds      int64 `doc:"Cache entry time-to-live in seconds"    json:"ttlSeconds"`
	}
}
