// Package widget wires user events to the catalog lookups and render functions
// through an explicit dispatch table.
package widget

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowFinder/internal/config"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/render"
)

const (
	searchFailedNotice   = "Search failed."
	episodesFailedNotice = "Episodes failed."
)

// Catalog is the part of the catalog client the widget needs.
type Catalog interface {
	SearchShows(ctx context.Context, term string) ([]models.Show, error)
	GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error)
}

// Handler reacts to one event.
type Handler func(ctx context.Context, ev Event) error

// Reporter receives failures surfaced to the user.
type Reporter func(err error)

// Widget owns the page, the catalog and the table mapping events to handlers.
// It is not safe for concurrent use: events are expected one at a time.
type Widget struct {
	catalog  Catalog
	page     *render.Page
	handlers map[EventType]Handler
	report   Reporter
	logger   zerolog.Logger
}

// Option customises a Widget.
type Option func(*Widget)

// WithReporter replaces the default Sentry reporter.
func WithReporter(r Reporter) Option {
	return func(w *Widget) {
		w.report = r
	}
}

// New creates a widget with the default dispatch table.
func New(catalog Catalog, page *render.Page, opts ...Option) *Widget {
	w := &Widget{
		catalog: catalog,
		page:    page,
		report:  reportToSentry,
		logger:  config.GetLogger(),
	}
	w.handlers = map[EventType]Handler{
		EventSearchSubmit:  w.handleSearchSubmit,
		EventEpisodesClick: w.handleEpisodesClick,
		EventEpisodesOpen:  w.handleEpisodesOpen,
	}

	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Page returns the document the widget renders into.
func (w *Widget) Page() *render.Page {
	return w.page
}

// Register sets the handler for t, replacing any existing one.
func (w *Widget) Register(t EventType, h Handler) {
	w.handlers[t] = h
}

// Dispatch routes ev to its handler.
func (w *Widget) Dispatch(ctx context.Context, ev Event) error {
	h, ok := w.handlers[ev.Type]
	if !ok {
		metrics.WidgetEventsTotal.WithLabelValues(string(ev.Type), "unhandled").Inc()
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}

	err := h(ctx, ev)
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.WidgetEventsTotal.WithLabelValues(string(ev.Type), outcome).Inc()
	return err
}

// Submit types term into the search input and submits the form.
func (w *Widget) Submit(ctx context.Context, term string) error {
	w.page.SetSearchTerm(term)
	return w.Dispatch(ctx, Event{Type: EventSearchSubmit, Target: w.page.SearchForm})
}

// ClickEpisodes activates the episodes control of the n-th displayed show (0-based).
func (w *Widget) ClickEpisodes(ctx context.Context, n int) error {
	buttons := w.page.EpisodeButtons()
	if n < 0 || n >= buttons.Length() {
		return fmt.Errorf("no show at position %d (%d displayed)", n+1, buttons.Length())
	}
	return w.Dispatch(ctx, Event{Type: EventEpisodesClick, Target: buttons.Eq(n)})
}

// ShowEpisodes displays the episodes of the show with the given catalog ID,
// whether or not it is in the show list.
func (w *Widget) ShowEpisodes(ctx context.Context, showID int) error {
	return w.Dispatch(ctx, Event{Type: EventEpisodesOpen, ShowID: showID})
}

func reportToSentry(err error) {
	sentry.CaptureException(err)
}
