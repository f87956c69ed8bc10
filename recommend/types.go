package recommend

// Request is the input to a recommendations lookup.
type Request struct {
	// MovieTitle is sent as the title query parameter. It is expected to be
	// non-empty; the endpoint rejects empty titles with a 400.
	MovieTitle string `json:"title"`
}

// Response is the JSON body returned by the recommendations endpoint.
type Response struct {
	Success       bool   `json:"success"`
	OriginalMovie string `json:"original_movie"`
	// Recommendations are in the server's relevance order.
	Recommendations []string `json:"recommendations"`
	Error           string   `json:"error,omitempty"`
}

// HasResults reports whether the response is a success carrying at least one title.
func (r *Response) HasResults() bool {
	return r != nil && r.Success && len(r.Recommendations) > 0
}
