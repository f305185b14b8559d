package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// WriteText writes the visible part of the page as plain text: the notice, the
// numbered show list and, when revealed, the episode list.
func WriteText(w io.Writer, p *Page) error {
	var sb strings.Builder

	if notice := NoticeText(p.Notice); notice != "" {
		fmt.Fprintf(&sb, "! %s\n", notice)
	}

	shows := p.ShowsList.Find(".Show")
	if shows.Length() > 0 {
		fmt.Fprintf(&sb, "Shows (%d):\n", shows.Length())
		shows.Each(func(i int, show *goquery.Selection) {
			name := collapseSpace(show.Find("h5").First().Text())
			fmt.Fprintf(&sb, "  [%d] %s (#%s)\n", i+1, name, show.AttrOr("data-show-id", "?"))
			if summary := collapseSpace(show.Find("small").First().Text()); summary != "" {
				fmt.Fprintf(&sb, "      %s\n", summary)
			}
			fmt.Fprintf(&sb, "      image: %s\n", show.Find("img").First().AttrOr("src", ""))
		})
	}

	if !IsHidden(p.EpisodesArea) {
		items := p.EpisodesList.Find("li")
		fmt.Fprintf(&sb, "Episodes (%d):\n", items.Length())
		items.Each(func(_ int, item *goquery.Selection) {
			fmt.Fprintf(&sb, "  - %s\n", collapseSpace(item.Text()))
		})
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
