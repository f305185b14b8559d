package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/models"
)

// PopulateShows replaces the content of list with one .Show element per show, in order.
func PopulateShows(list *goquery.Selection, shows []models.Show) error {
	var sb strings.Builder
	for _, show := range shows {
		markup, err := showMarkup(show)
		if err != nil {
			return fmt.Errorf("render show %d: %w", show.ID, err)
		}
		sb.WriteString(markup)
	}

	list.Empty()
	if sb.Len() > 0 {
		list.AppendHtml(sb.String())
	}
	return nil
}

// ShowIDOf resolves the show a UI element belongs to through the data-show-id
// attribute of its closest .Show ancestor.
func ShowIDOf(target *goquery.Selection) (int, error) {
	if target == nil {
		return 0, &apperrors.ErrInvalidShowID{}
	}

	raw, ok := target.Closest(".Show").Attr("data-show-id")
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, &apperrors.ErrInvalidShowID{}
	}

	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &apperrors.ErrInvalidShowID{Raw: raw}
	}
	return id, nil
}
