package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const hiddenStyle = "display: none;"

// Hide hides every element of sel.
func Hide(sel *goquery.Selection) {
	sel.SetAttr("style", hiddenStyle)
}

// Reveal clears the inline style that keeps sel hidden.
func Reveal(sel *goquery.Selection) {
	sel.RemoveAttr("style")
}

// IsHidden reports whether the first element of sel is hidden by an inline style.
func IsHidden(sel *goquery.Selection) bool {
	style := strings.ReplaceAll(strings.ToLower(sel.AttrOr("style", "")), " ", "")
	return strings.Contains(style, "display:none")
}
