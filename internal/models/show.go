package models

// Show represents a TV show returned by a catalog search
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // May contain HTML markup
	Image   string `json:"image"`   // Never empty, falls back to the missing-image placeholder
}
