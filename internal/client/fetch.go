package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/parser"
)

// fetchList performs a single GET against the catalog and normalises the body with p.
// endpoint is a low-cardinality label used for metrics and logs.
func fetchList[T any](ctx context.Context, c *client, endpoint, url string, p parser.Parser[T]) ([]T, error) {
	logger := config.GetLogger()
	start := time.Now()
	status := "error"
	defer func() {
		metrics.CatalogRequestsTotal.WithLabelValues(endpoint, status).Inc()
		metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		logger.Warn().Str("endpoint", endpoint).Str("url", url).Int("statusCode", resp.StatusCode).Msg("Catalog returned non-OK status")
		return nil, &apperrors.ErrUnexpectedStatus{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := parser.NewUTF8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}

	items, err := p.Parse(body)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("endpoint", endpoint).Int("count", len(items)).Dur("elapsed", time.Since(start)).Msg("Catalog request completed")
	return items, nil
}
