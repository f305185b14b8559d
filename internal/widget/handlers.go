package widget

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Belphemur/ShowFinder/internal/apperrors"
	"github.com/Belphemur/ShowFinder/internal/metrics"
	"github.com/Belphemur/ShowFinder/internal/models"
	"github.com/Belphemur/ShowFinder/internal/render"
)

// handleSearchSubmit looks up the term typed in the search input. On success the
// episode area is hidden and the show list replaced; on failure the page keeps
// its previous content and gains a notice.
func (w *Widget) handleSearchSubmit(ctx context.Context, _ Event) error {
	term := w.page.SearchTerm()

	result := w.lookupShows(ctx, term)
	if !result.OK() {
		return w.fail(searchFailedNotice, fmt.Errorf("search for %q failed: %w", term, result.Err))
	}

	render.Hide(w.page.EpisodesArea)
	if err := render.PopulateShows(w.page.ShowsList, result.Value); err != nil {
		return w.fail(searchFailedNotice, err)
	}
	render.ClearNotice(w.page.Notice)
	metrics.DisplayedShows.Set(float64(len(result.Value)))

	w.logger.Debug().Str("term", term).Int("count", len(result.Value)).Msg("Show list rendered")
	return nil
}

// handleEpisodesClick fetches the episodes of the show the clicked control belongs to.
func (w *Widget) handleEpisodesClick(ctx context.Context, ev Event) error {
	showID, err := render.ShowIDOf(ev.Target)
	if err != nil {
		return w.fail(episodesFailedNotice, err)
	}
	return w.showEpisodes(ctx, showID)
}

// handleEpisodesOpen fetches the episodes of the show named by ev.ShowID.
func (w *Widget) handleEpisodesOpen(ctx context.Context, ev Event) error {
	if ev.ShowID <= 0 {
		return w.fail(episodesFailedNotice, &apperrors.ErrInvalidShowID{Raw: strconv.Itoa(ev.ShowID)})
	}
	return w.showEpisodes(ctx, ev.ShowID)
}

// showEpisodes looks the episodes of showID up and reveals them.
func (w *Widget) showEpisodes(ctx context.Context, showID int) error {
	result := w.lookupEpisodes(ctx, showID)
	if !result.OK() {
		return w.fail(episodesFailedNotice, fmt.Errorf("episodes for show %d failed: %w", showID, result.Err))
	}

	if err := render.PopulateEpisodes(w.page.EpisodesArea, w.page.EpisodesList, result.Value); err != nil {
		return w.fail(episodesFailedNotice, err)
	}
	render.ClearNotice(w.page.Notice)

	w.logger.Debug().Int("showID", showID).Int("count", len(result.Value)).Msg("Episode list rendered")
	return nil
}

func (w *Widget) lookupShows(ctx context.Context, term string) models.Result[[]models.Show] {
	shows, err := w.catalog.SearchShows(ctx, term)
	return models.ResultOf(shows, err)
}

func (w *Widget) lookupEpisodes(ctx context.Context, showID int) models.Result[[]models.Episode] {
	episodes, err := w.catalog.GetEpisodes(ctx, showID)
	return models.ResultOf(episodes, err)
}

// fail surfaces err to the user through the notice area and to the reporter.
func (w *Widget) fail(notice string, err error) error {
	w.logger.Warn().Err(err).Str("notice", notice).Msg("Widget action failed")
	render.SetNotice(w.page.Notice, notice)
	if w.report != nil {
		w.report(err)
	}
	return err
}
