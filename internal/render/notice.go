package render

import "github.com/PuerkitoBio/goquery"

// SetNotice shows msg in the notice area.
func SetNotice(area *goquery.Selection, msg string) {
	area.SetText(msg)
	Reveal(area)
}

// ClearNotice empties and hides the notice area.
func ClearNotice(area *goquery.Selection) {
	area.Empty()
	Hide(area)
}

// NoticeText returns the visible notice, or "" when the area is hidden.
func NoticeText(area *goquery.Selection) string {
	if IsHidden(area) {
		return ""
	}
	return area.Text()
}
