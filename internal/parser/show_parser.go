package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// ShowParser implements the Parser interface for catalog search results
type ShowParser struct {
	missingImageURL string
}

// NewShowParser creates a new show parser that substitutes missingImageURL for absent artwork
func NewShowParser(missingImageURL string) *ShowParser {
	if missingImageURL == "" {
		missingImageURL = config.DefaultMissingImageURL
	}
	return &ShowParser{
		missingImageURL: missingImageURL,
	}
}

// Parse decodes a search response and returns one Show per entry, in catalog order
func (p *ShowParser) Parse(body io.Reader) ([]models.Show, error) {
	logger := config.GetLogger()

	var entries []searchEntry
	if err := json.NewDecoder(body).Decode(&entries); err != nil {
		logger.Error().Err(err).Msg("Failed to decode search response")
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	shows := make([]models.Show, 0, len(entries))
	for i, entry := range entries {
		if entry.Show == nil {
			return nil, fmt.Errorf("search result %d has no show", i)
		}
		show := p.toShow(entry.Show)
		logger.Debug().
			Int("id", show.ID).
			Str("name", show.Name).
			Float64("score", entry.Score).
			Bool("placeholderImage", show.Image == p.missingImageURL).
			Msg("Parsed show")
		shows = append(shows, show)
	}

	logger.Debug().Int("total_shows", len(shows)).Msg("Completed parsing search response")
	return shows, nil
}

func (p *ShowParser) toShow(entry *showEntry) models.Show {
	image := p.missingImageURL
	if entry.Image != nil && entry.Image.Medium != "" {
		image = entry.Image.Medium
	}

	var summary string
	if entry.Summary != nil {
		summary = *entry.Summary
	}

	return models.Show{
		ID:      int(entry.ID),
		Name:    entry.Name,
		Summary: summary,
		Image:   image,
	}
}
