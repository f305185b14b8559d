package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// SearchShows queries GET {base}/search/shows?q={term}.
// An empty term is sent as-is; zero matches yield an empty slice.
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()
	logger.Info().Str("term", term).Msg("Searching catalog for shows")

	searchURL := fmt.Sprintf("%s/search/shows?%s", c.baseURL, url.Values{"q": {term}}.Encode())

	shows, err := fetchList(ctx, c, "search", searchURL, c.showParser)
	if err != nil {
		return nil, fmt.Errorf("search shows %q: %w", term, err)
	}

	logger.Info().Str("term", term).Int("count", len(shows)).Msg("Show search completed")
	return shows, nil
}
