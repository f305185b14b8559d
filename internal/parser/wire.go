package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// flexInt decodes integers the catalog sometimes sends as strings or null.
// null decodes to 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", s, err)
		}
		*f = flexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// searchEntry is one element of GET /search/shows
type searchEntry struct {
	Score float64    `json:"score"`
	Show  *showEntry `json:"show"`
}

type showEntry struct {
	ID      flexInt     `json:"id"`
	Name    string      `json:"name"`
	Summary *string     `json:"summary"`
	Image   *imageEntry `json:"image"`
}

type imageEntry struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// episodeEntry is one element of GET /shows/{id}/episodes
type episodeEntry struct {
	ID     flexInt `json:"id"`
	Name   string  `json:"name"`
	Season flexInt `json:"season"`
	Number flexInt `json:"number"`
}
