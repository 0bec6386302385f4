package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers all URL shortener routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/api/shorten",
		Summary:       "Shorten a URL",
		Description:   "Creates a shortened version of the provided URL and caches it for redirects.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusCreated,
	}, urlHandler.Shorten)

	huma.Register(api, huma.Operation{
		Method:        http.MethodGet,
		Path:          "/{code}",
		Summary:       "Redirect to original URL",
		Description:   "Redirects to the original URL, serving from cache when possible with store fallback.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusFound,
	}, urlHandler.Redirect)

	huma.Register(api, huma.Operation{
		Method:        http.MethodDelete,
		Path:          "/api/cache/{code}",
		Summary:       "Invalidate cached mapping",
		Description:   "Removes the redirect-cache entry for a code. The stored mapping is untouched.",
		Tags:          []string{"Cache"},
		DefaultStatus: http.StatusNoContent,
	}, urlHandler.InvalidateCache)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/cache/stats",
		Summary:     "Redirect cache statistics",
		Description: "Reports approximate cache occupancy and TTL for monitoring.",
		Tags:        []string{"Cache"},
	}, urlHandler.CacheStats)
}
