package domain

import "fmt"

// Gif represents a single result returned by the remote search API.
// Fields beyond the identifiers are passed through for display only;
// the application does not interpret them further.
type Gif struct {
	ID    string // API-assigned unique identifier
	Title string // Display title
	URL   string // Canonical page URL

	// Rendition metadata for the default preview
	PreviewURL string // Direct media URL
	Width      int    // Preview width in pixels
	Height     int    // Preview height in pixels

	Rating string // Content rating (e.g., "g", "pg")
}

// Dimensions returns a human-readable "WxH" string, empty when unknown.
func (g Gif) Dimensions() string {
	if g.Width <= 0 || g.Height <= 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// DisplayTitle returns the title, falling back to the ID for untitled results.
func (g Gif) DisplayTitle() string {
	if g.Title != "" {
		return g.Title
	}
	return g.ID
}

// SearchUpdate describes the outcome of one completed search request.
// Exactly one of Results/Err is meaningful; Stale marks a response that
// arrived after a newer request already replaced the result list.
type SearchUpdate struct {
	Query   string
	Results []Gif
	Err     error
	Stale   bool
}
