package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Belphemur/ShowFinder/internal/models"
)

// PopulateEpisodes replaces the content of list with one <li> per episode, in order,
// and reveals area.
func PopulateEpisodes(area, list *goquery.Selection, episodes []models.Episode) error {
	var sb strings.Builder
	for _, episode := range episodes {
		markup, err := episodeMarkup(episode)
		if err != nil {
			return fmt.Errorf("render episode %d: %w", episode.ID, err)
		}
		sb.WriteString(markup)
	}

	list.Empty()
	Reveal(area)
	if sb.Len() > 0 {
		list.AppendHtml(sb.String())
	}
	return nil
}
