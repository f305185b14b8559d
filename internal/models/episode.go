package models

import "fmt"

// Episode represents a single broadcast unit of a show
type Episode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"` // 0 for specials the catalog leaves unnumbered
}

// Label returns the human readable list entry for the episode
func (e Episode) Label() string {
	return fmt.Sprintf("%s (Season %d, number %d)", e.Name, e.Season, e.Number)
}
