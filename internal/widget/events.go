package widget

import (
	"errors"

	"github.com/PuerkitoBio/goquery"
)

// EventType names a user action the widget reacts to.
type EventType string

const (
	// EventSearchSubmit is the search form being submitted.
	EventSearchSubmit EventType = "search:submit"
	// EventEpisodesClick is the episodes control of a displayed show being activated.
	EventEpisodesClick EventType = "episodes:click"
	// EventEpisodesOpen asks for the episodes of a show known only by its catalog ID.
	EventEpisodesOpen EventType = "episodes:open"
)

// ErrUnknownEvent is returned by Dispatch for event types with no registered handler.
var ErrUnknownEvent = errors.New("no handler registered for event")

// Event is a single user action. Target is the element the action happened on
// (the form for a submit, the button for a click). ShowID is only read for
// episodes:open.
type Event struct {
	Type   EventType
	Target *goquery.Selection
	ShowID int
}
