package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// ShowEntryOptions contains options for generating one search result entry
type ShowEntryOptions struct {
	ShowID  int
	Name    string
	Summary string // Empty renders "summary": null
	Medium  string // Empty together with NoImage=false renders an image object without medium
	NoImage bool   // Renders "image": null
	Score   float64
}

// EpisodeEntryOptions contains options for generating one episode entry
type EpisodeEntryOptions struct {
	EpisodeID int
	Name      string
	Season    int
	Number    *int // nil renders "number": null
}

// IntPtr is a helper for creating *int values in tests
func IntPtr(v int) *int {
	return &v
}

// GenerateSearchJSON builds a /search/shows payload shaped like the real catalog's
func GenerateSearchJSON(entries []ShowEntryOptions) string {
	items := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		show := map[string]any{
			"id":       e.ShowID,
			"name":     e.Name,
			"url":      fmt.Sprintf("https://www.tvmaze.com/shows/%d", e.ShowID),
			"language": "English",
			"summary":  nil,
		}
		if e.Summary != "" {
			show["summary"] = e.Summary
		}
		switch {
		case e.NoImage:
			show["image"] = nil
		case e.Medium != "":
			show["image"] = map[string]any{"medium": e.Medium, "original": strings.Replace(e.Medium, "medium", "original", 1)}
		default:
			show["image"] = map[string]any{"original": "https://static.tvmaze.com/original.jpg"}
		}
		items = append(items, map[string]any{"score": e.Score, "show": show})
	}
	return mustJSON(items)
}

// GenerateEpisodesJSON builds a /shows/{id}/episodes payload
func GenerateEpisodesJSON(entries []EpisodeEntryOptions) string {
	items := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		item := map[string]any{
			"id":      e.EpisodeID,
			"name":    e.Name,
			"season":  e.Season,
			"number":  nil,
			"airdate": "2011-04-17",
		}
		if e.Number != nil {
			item["number"] = *e.Number
		}
		items = append(items, item)
	}
	return mustJSON(items)
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// CatalogServer is an httptest catalog answering from fixed payloads.
// Unknown terms yield an empty list, unknown shows a 404.
type CatalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	searches map[string]string
	episodes map[int]string
	requests []string
}

// NewCatalogServer starts a fake catalog that is closed when the test ends
func NewCatalogServer(t *testing.T) *CatalogServer {
	t.Helper()
	cs := &CatalogServer{
		searches: make(map[string]string),
		episodes: make(map[int]string),
	}
	cs.Server = httptest.NewServer(http.HandlerFunc(cs.serve))
	t.Cleanup(cs.Close)
	return cs
}

// AddSearch registers the payload returned for term
func (cs *CatalogServer) AddSearch(term string, entries ...ShowEntryOptions) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.searches[term] = GenerateSearchJSON(entries)
}

// AddEpisodes registers the episode list of showID
func (cs *CatalogServer) AddEpisodes(showID int, entries ...EpisodeEntryOptions) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.episodes[showID] = GenerateEpisodesJSON(entries)
}

// Requests returns the request URIs received so far, in order
func (cs *CatalogServer) Requests() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]string(nil), cs.requests...)
}

func (cs *CatalogServer) serve(w http.ResponseWriter, r *http.Request) {
	cs.mu.Lock()
	cs.requests = append(cs.requests, r.URL.RequestURI())
	cs.mu.Unlock()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if r.URL.Path == "/search/shows" {
		cs.mu.Lock()
		payload, ok := cs.searches[r.URL.Query().Get("q")]
		cs.mu.Unlock()
		if !ok {
			payload = "[]"
		}
		_, _ = w.Write([]byte(payload))
		return
	}

	if rest, ok := strings.CutPrefix(r.URL.Path, "/shows/"); ok {
		if idStr, ok := strings.CutSuffix(rest, "/episodes"); ok {
			if id, err := strconv.Atoi(idStr); err == nil {
				cs.mu.Lock()
				payload, found := cs.episodes[id]
				cs.mu.Unlock()
				if found {
					_, _ = w.Write([]byte(payload))
					return
				}
			}
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"name":"Not Found","message":"","code":0,"status":404}`))
}
