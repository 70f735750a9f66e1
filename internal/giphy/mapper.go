package giphy

import (
	"strconv"

	"github.com/gifdex/gifdex/internal/domain"
)

// mapGifs converts API gif objects to domain results, passing fields
// through without interpretation
func mapGifs(objects []gifObject) []domain.Gif {
	gifs := make([]domain.Gif, 0, len(objects))
	for _, o := range objects {
		gifs = append(gifs, mapGif(o))
	}
	return gifs
}

func mapGif(o gifObject) domain.Gif {
	gif := domain.Gif{
		ID:     o.ID,
		Title:  o.Title,
		URL:    o.URL,
		Rating: o.Rating,
	}

	// Prefer the fixed-width rendition for previews, fall back to original
	r := o.Images.FixedWidth
	if r.URL == "" {
		r = o.Images.Original
	}
	gif.PreviewURL = r.URL
	gif.Width = atoiOrZero(r.Width)
	gif.Height = atoiOrZero(r.Height)

	return gif
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
