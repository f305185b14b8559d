package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// EpisodeParser implements the Parser interface for a show's episode list
type EpisodeParser struct{}

// NewEpisodeParser creates a new episode parser instance
func NewEpisodeParser() *EpisodeParser {
	return &EpisodeParser{}
}

// Parse decodes an episode list response, keeping catalog order and values as-is
func (p *EpisodeParser) Parse(body io.Reader) ([]models.Episode, error) {
	logger := config.GetLogger()

	var entries []episodeEntry
	if err := json.NewDecoder(body).Decode(&entries); err != nil {
		logger.Error().Err(err).Msg("Failed to decode episode response")
		return nil, fmt.Errorf("failed to decode episode response: %w", err)
	}

	episodes := make([]models.Episode, 0, len(entries))
	for _, entry := range entries {
		episodes = append(episodes, models.Episode{
			ID:     int(entry.ID),
			Name:   entry.Name,
			Season: int(entry.Season),
			Number: int(entry.Number),
		})
	}

	logger.Debug().Int("total_episodes", len(episodes)).Msg("Completed parsing episode response")
	return episodes, nil
}
