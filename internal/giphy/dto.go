package giphy

// searchResponse is the root envelope of the /v1/gifs/search endpoint
type searchResponse struct {
	Data       []gifObject `json:"data"`
	Pagination pagination  `json:"pagination"`
	Meta       meta        `json:"meta"`
}

type pagination struct {
	TotalCount int `json:"total_count"`
	Count      int `json:"count"`
	Offset     int `json:"offset"`
}

type meta struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

// gifObject is one search result. Only the fields the application renders
// are declared; the rest of the payload is ignored.
type gifObject struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Rating string `json:"rating"`
	Images images `json:"images"`
}

type images struct {
	FixedWidth rendition `json:"fixed_width"`
	Original   rendition `json:"original"`
}

// rendition dimensions arrive as strings on the wire
type rendition struct {
	URL    string `json:"url"`
	Width  string `json:"width"`
	Height string `json:"height"`
}
