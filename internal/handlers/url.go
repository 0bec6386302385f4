package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortlink/internal/analytics"
	"github.com/serroba/shortlink/internal/messaging"
	"github.com/serroba/shortlink/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler exposes the shortener service over HTTP.
type URLHandler struct {
	service            *shortener.Service
	baseURL            string
	publishURLCreated  messaging.Publish[analytics.URLCreatedEvent]
	publishURLAccessed messaging.Publish[analytics.URLAccessedEvent]
	logger             *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(
	service *shortener.Service,
	baseURL string,
	publishURLCreated messaging.Publish[analytics.URLCreatedEvent],
	publishURLAccessed messaging.Publish[analytics.URLAccessedEvent],
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		service:            service,
		baseURL:            baseURL,
		publishURLCreated:  publishURLCreated,
		publishURLAccessed: publishURLAccessed,
		logger:             logger,
	}
}

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata for analytics.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
	Referrer  string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

func (h *URLHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	mapping, err := h.service.Shorten(ctx, req.Body.URL)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidInput):
			return nil, huma.Error400BadRequest("url cannot be blank")
		case errors.Is(err, shortener.ErrGenerationExhausted):
			return nil, huma.Error500InternalServerError("could not generate a unique short code")
		default:
			return nil, huma.Error500InternalServerError("failed to save url")
		}
	}

	meta := RequestMetaFromContext(ctx)
	event := analytics.NewURLCreatedEvent(mapping, meta.ClientIP, meta.UserAgent)

	if err := h.publishURLCreated(event); err != nil {
		h.logger.Error("failed to publish url created event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	shortURL := fmt.Sprintf("%s/%s", h.baseURL, mapping.Code)

	resp := &ShortenResponse{Status: http.StatusCreated}
	resp.Headers.Location = shortURL
	resp.Body.Code = string(mapping.Code)
	resp.Body.ShortURL = shortURL
	resp.Body.OriginalURL = mapping.LongURL
	resp.Body.CreatedAt = mapping.CreatedAt
	resp.Body.ExpiresAt = mapping.ExpiresAt

	return resp, nil
}

func (h *URLHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	longURL, err := h.service.Resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidInput):
			return nil, huma.Error400BadRequest("code cannot be blank")
		case errors.Is(err, shortener.ErrNotFound):
			return nil, huma.Error404NotFound("short url not found")
		default:
			return nil, huma.Error500InternalServerError("failed to resolve url")
		}
	}

	meta := RequestMetaFromContext(ctx)
	event := analytics.NewURLAccessedEvent(req.Code, time.Now(), meta.ClientIP, meta.UserAgent, meta.Referrer)

	if err = h.publishURLAccessed(event); err != nil {
		h.logger.Error("failed to publish url accessed event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp := &RedirectResponse{Status: http.StatusFound}
	resp.Headers.Location = longURL

	return resp, nil
}

func (h *URLHandler) InvalidateCache(ctx context.Context, req *InvalidateCacheRequest) (*InvalidateCacheResponse, error) {
	if err := h.service.InvalidateCache(ctx, shortener.Code(req.Code)); err != nil {
		if errors.Is(err, shortener.ErrInvalidInput) {
			return nil, huma.Error400BadRequest("code cannot be blank")
		}

		return nil, huma.Error500InternalServerError("failed to invalidate cache")
	}

	return &InvalidateCacheResponse{Status: http.StatusNoContent}, nil
}

func (h *URLHandler) CacheStats(ctx context.Context, _ *struct{}) (*CacheStatsResponse, error) {
	stats := h.service.CacheStats(ctx)

	resp := &CacheStatsResponse{}
	resp.Body.CacheEnabled = stats.Enabled
	resp.Body.TotalCachedURLs = stats.TotalCachedURLs
	resp.Body.TTLSeconds = stats.TTLSeconds

	return resp, nil
}
