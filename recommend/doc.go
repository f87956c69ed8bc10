// Package recommend talks to the movie recommendations endpoint.
//
// Client.Fetch issues GET <base>/api/movies/recommendations?title=<escaped>
// and decodes the JSON body. Failures of any kind
// (transport, non-2xx status, undecodable body) come back as *RequestError
// so callers can show Message to the user.
package recommend
