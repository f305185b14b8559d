package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// GetEpisodes queries GET {base}/shows/{id}/episodes.
// A 404 from the catalog is reported as apperrors.ErrNotFound for the show.
func (c *client) GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()
	logger.Info().Int("showID", showID).Msg("Fetching episodes for show")

	episodesURL := fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID)

	episodes, err := fetchList(ctx, c, "episodes", episodesURL, c.episodeParser)
	if err != nil {
		var statusErr *apperrors.ErrUnexpectedStatus
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("get episodes: %w", apperrors.NewShowNotFoundError(showID))
		}
		return nil, fmt.Errorf("get episodes for show %d: %w", showID, err)
	}

	logger.Info().Int("showID", showID).Int("count", len(episodes)).Msg("Episode fetch completed")
	return episodes, nil
}
