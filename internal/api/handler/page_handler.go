package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumopress/user-directory/internal/api/metrics"
)

// PageFetcher is the interface the handler uses to resolve page assets.
// The returned source names where the body came from (cache, origin,
// offline fallback).
type PageFetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, string, error)
}

// PageHandler serves static page assets cache-first.
type PageHandler struct {
	cache PageFetcher
}

func NewPageHandler(cache PageFetcher) *PageHandler {
	return &PageHandler{cache: cache}
}

// Get handles GET /v1/pages/:key.
//
// @Summary      Fetch a page asset, cache-first
// @Tags         pages
// @Produce      html
// @Param        key  path      string  true  "Asset key (e.g. index.html)"
// @Success      200  {string}  string
// @Failure      404  {object}  errorResponse
// @Router       /v1/pages/{key} [get]
func (h *PageHandler) Get(c echo.Context) error {
	key := c.Param("key")

	body, source, err := h.cache.Fetch(c.Request().Context(), key)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "page unavailable")
	}

	metrics.PageFetchTotal.WithLabelValues(source).Inc()
	c.Response().Header().Set("X-Served-From", source)
	return c.HTMLBlob(http.StatusOK, body)
}
